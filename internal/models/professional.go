package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Professional struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"nome"`
	Specialty string `gorm:"size:100" json:"especialidade"`

	// Cor usada pelo front no calendário, formato #RRGGBB
	CalendarColor string `gorm:"size:7" json:"cor_agenda"`

	Active bool `gorm:"default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Professional) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

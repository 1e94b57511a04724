package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"nome"`
	Description string  `gorm:"size:255" json:"descricao"`
	DurationMin int     `json:"duracao_min"`
	Price       float64 `json:"valor"`
	Category    string  `gorm:"size:50;default:'geral'" json:"categoria"`
	Active      bool    `gorm:"default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

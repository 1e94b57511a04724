package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ProfessionalID string       `gorm:"type:uuid;index:idx_agenda_dia" json:"profissional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"profissional"`

	ServiceID string  `gorm:"type:uuid" json:"servico_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"servico"`

	// Data YYYY-MM-DD, horários HH:MM (24h). Strings zero-padded comparam
	// na ordem cronológica, então os filtros em SQL ficam simples.
	Date      string `gorm:"size:10;index:idx_agenda_dia" json:"data"`
	StartTime string `gorm:"size:5" json:"hora_inicio"`
	EndTime   string `gorm:"size:5" json:"hora_fim"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	ClientName  string `gorm:"size:100;not null" json:"cliente_nome"`
	ClientPhone string `gorm:"size:20;not null" json:"cliente_telefone"`
	ClientEmail string `gorm:"size:100" json:"cliente_email"`

	PriceCharged float64 `json:"valor_cobrado"`

	Notes       string     `gorm:"size:255" json:"notas"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

package models

import "time"

// CalendarConfig é a política de expediente do estúdio. A linha mais recente
// vale; quando não existe nenhuma, a API usa os padrões documentados
// (08:00–21:00, slots de 30 minutos, 30 dias de antecedência).
type CalendarConfig struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OpeningTime        string `gorm:"size:5" json:"inicio_expediente"`
	ClosingTime        string `gorm:"size:5" json:"fim_expediente"`
	SlotIntervalMin    int    `json:"intervalo_slots"`
	AdvanceBookingDays int    `json:"dias_antecedencia"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

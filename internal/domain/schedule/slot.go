package schedule

import (
	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

// Slot é um intervalo candidato dentro do expediente. Não é persistido:
// a grade é recalculada a cada consulta de disponibilidade.
type Slot struct {
	Start     string `json:"inicio"`
	End       string `json:"fim"`
	Available bool   `json:"disponivel"`
}

// Grid monta a sequência ordenada de slots do expediente: intervalos
// consecutivos de SlotIntervalMin, sem sobreposição e sem slot parcial no
// fim do dia (o último termina no máximo exatamente no fim do expediente).
// Função pura — mesma configuração produz sempre a mesma grade.
func Grid(cfg *models.CalendarConfig) ([]Slot, error) {
	open, errOpen := ParseClock(cfg.OpeningTime)
	closing, errClose := ParseClock(cfg.ClosingTime)

	if errOpen != nil || errClose != nil || open >= closing || cfg.SlotIntervalMin <= 0 {
		return nil, httperr.ErrBusiness(
			httperr.KindValidation,
			"invalid_config",
			"Configuração de expediente inválida.",
		)
	}

	var slots []Slot
	for cur := open; cur+cfg.SlotIntervalMin <= closing; cur += cfg.SlotIntervalMin {
		slots = append(slots, Slot{
			Start:     FormatClock(cur),
			End:       FormatClock(cur + cfg.SlotIntervalMin),
			Available: true,
		})
	}

	return slots, nil
}

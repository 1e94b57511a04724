package schedule

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

const (
	DefaultOpeningTime        = "08:00"
	DefaultClosingTime        = "21:00"
	DefaultSlotIntervalMin    = 30
	DefaultAdvanceBookingDays = 30

	DateLayout = "2006-01-02"
)

// DefaultCalendarConfig é usado quando nenhuma configuração foi persistida.
func DefaultCalendarConfig() *models.CalendarConfig {
	return &models.CalendarConfig{
		OpeningTime:        DefaultOpeningTime,
		ClosingTime:        DefaultClosingTime,
		SlotIntervalMin:    DefaultSlotIntervalMin,
		AdvanceBookingDays: DefaultAdvanceBookingDays,
	}
}

// ValidateCalendarConfig acumula todos os campos violados.
func ValidateCalendarConfig(cfg *models.CalendarConfig) []httperr.FieldError {
	var fields []httperr.FieldError

	open, errOpen := ParseClock(cfg.OpeningTime)
	if errOpen != nil {
		fields = append(fields, httperr.FieldError{
			Field:   "inicio_expediente",
			Message: "Hora inválida. Use formato HH:MM (24h)",
		})
	}

	closing, errClose := ParseClock(cfg.ClosingTime)
	if errClose != nil {
		fields = append(fields, httperr.FieldError{
			Field:   "fim_expediente",
			Message: "Hora inválida. Use formato HH:MM (24h)",
		})
	}

	if errOpen == nil && errClose == nil && open >= closing {
		fields = append(fields, httperr.FieldError{
			Field:   "inicio_expediente",
			Message: "Início do expediente deve ser antes do fim",
		})
	}

	if cfg.SlotIntervalMin <= 0 {
		fields = append(fields, httperr.FieldError{
			Field:   "intervalo_slots",
			Message: "Intervalo de slots deve ser positivo",
		})
	}

	if cfg.AdvanceBookingDays < 0 {
		fields = append(fields, httperr.FieldError{
			Field:   "dias_antecedencia",
			Message: "Dias de antecedência não pode ser negativo",
		})
	}

	return fields
}

// IsDate valida datas no formato YYYY-MM-DD.
func IsDate(date string) bool {
	if len(date) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// WithinBookingWindow informa se a data cai em [hoje, hoje+dias].
// Datas YYYY-MM-DD comparam na ordem cronológica como strings.
func WithinBookingWindow(cfg *models.CalendarConfig, date string, now time.Time) bool {
	today := now.Format(DateLayout)
	limit := now.AddDate(0, 0, cfg.AdvanceBookingDays).Format(DateLayout)
	return date >= today && date <= limit
}

// ResolveSlot valida o horário pedido contra a política do calendário e
// deriva o fim a partir da duração do serviço. O agendamento nunca pode
// cruzar a meia-noite.
func ResolveSlot(cfg *models.CalendarConfig, start string, durationMin int) (string, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return "", httperr.ErrInvalidSlot("Hora inválida. Use formato HH:MM (24h)")
	}

	open, errOpen := ParseClock(cfg.OpeningTime)
	closing, errClose := ParseClock(cfg.ClosingTime)
	if errOpen != nil || errClose != nil || open >= closing || cfg.SlotIntervalMin <= 0 {
		return "", httperr.ErrBusiness(httperr.KindValidation, "invalid_config", "Configuração de expediente inválida.")
	}

	endMin := startMin + durationMin
	if endMin > MinutesPerDay {
		return "", httperr.ErrInvalidSlot("Agendamento não pode cruzar a meia-noite")
	}

	if startMin < open || endMin > closing {
		return "", httperr.ErrInvalidSlot(fmt.Sprintf(
			"Horário fora do expediente (%s - %s)", cfg.OpeningTime, cfg.ClosingTime,
		))
	}

	if (startMin-open)%cfg.SlotIntervalMin != 0 {
		return "", httperr.ErrInvalidSlot(fmt.Sprintf(
			"Horários devem ser em intervalos de %d minutos", cfg.SlotIntervalMin,
		))
	}

	return FormatClock(endMin), nil
}

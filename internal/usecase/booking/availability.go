package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/esthetic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/timezone"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/usecase/calendarcfg"
)

// ProfessionalAvailability é a grade de um profissional em uma data.
type ProfessionalAvailability struct {
	ProfessionalID   string        `json:"profissional_id"`
	ProfessionalName string        `json:"profissional_nome"`
	Slots            []domain.Slot `json:"slots"`
}

type GetAvailability struct {
	repo   domain.Repository
	config *calendarcfg.Resolve

	now func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	config *calendarcfg.Resolve,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		config: config,
		now:    timezone.Now,
	}
}

// Execute monta a grade do dia e marca os slots ocupados. A grade não é
// persistida — é recalculada a cada consulta a partir da configuração.
// professionalID "all" cobre todos os profissionais ativos.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	professionalID string,
	date string,
) ([]ProfessionalAvailability, *models.CalendarConfig, error) {

	if !domain.IsDate(date) {
		return nil, nil, httperr.ErrValidation([]httperr.FieldError{
			{Field: "data", Message: "Data inválida. Use formato YYYY-MM-DD"},
		})
	}

	cfg, err := uc.config.Execute(ctx)
	if err != nil {
		return nil, nil, err
	}

	if !domain.WithinBookingWindow(cfg, date, uc.now()) {
		return nil, nil, httperr.ErrOutOfWindow(
			"Data fora da janela de agendamento permitida",
		)
	}

	var professionals []models.Professional
	if professionalID == "all" {
		professionals, err = uc.repo.ListActiveProfessionals(ctx)
		if err != nil {
			return nil, nil, err
		}
	} else {
		if uuid.Validate(professionalID) != nil {
			return nil, nil, httperr.ErrNotFound("professional_not_found", "Profissional não encontrado")
		}
		prof, err := uc.repo.GetProfessional(ctx, professionalID)
		if err != nil {
			return nil, nil, err
		}
		if !prof.Active {
			return nil, nil, httperr.ErrNotFound("professional_not_found", "Profissional não encontrado")
		}
		professionals = []models.Professional{*prof}
	}

	out := make([]ProfessionalAvailability, 0, len(professionals))
	for _, prof := range professionals {
		slots, err := domain.Grid(cfg)
		if err != nil {
			return nil, nil, err
		}

		day, err := uc.repo.ListAppointmentsForDay(ctx, prof.ID, date)
		if err != nil {
			return nil, nil, err
		}

		out = append(out, ProfessionalAvailability{
			ProfessionalID:   prof.ID,
			ProfessionalName: prof.Name,
			Slots:            domain.MarkBusy(slots, day),
		})
	}

	return out, cfg, nil
}

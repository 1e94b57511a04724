package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/esthetic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	now func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

// Execute faz o soft delete: status vira cancelled, o registro fica e o
// intervalo volta a aparecer livre. Cancelar algo já cancelado é no-op.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	id string,
	reason string,
) (*models.Appointment, error) {

	if uuid.Validate(id) != nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado")
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if domain.Status(ap.Status) == domain.StatusCancelled {
		return ap, nil
	}

	if err := domain.Cancel(ap, reason, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"motivo": reason},
	})

	return ap, nil
}

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

// TransitionBooking aplica o ciclo de vida do agendamento:
// scheduled → confirmed → completed, com cancelled e no_show como saídas
// a partir de scheduled/confirmed.
type TransitionBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	now func() time.Time
}

func NewTransitionBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *TransitionBooking {
	return &TransitionBooking{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

func (uc *TransitionBooking) Execute(
	ctx context.Context,
	id string,
	target domain.Status,
) (*models.Appointment, error) {

	if uuid.Validate(id) != nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado")
	}

	if !target.IsValid() {
		return nil, httperr.ErrValidation([]httperr.FieldError{
			{Field: "status", Message: "Status inválido"},
		})
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	// Repetir o status atual é no-op, na mesma linha do cancelamento
	// idempotente.
	if domain.Status(ap.Status) == target {
		return ap, nil
	}

	switch target {
	case domain.StatusConfirmed:
		err = domain.Confirm(ap)
	case domain.StatusCompleted:
		err = domain.Complete(ap, uc.now())
	case domain.StatusNoShow:
		err = domain.MarkNoShow(ap)
	case domain.StatusCancelled:
		err = domain.Cancel(ap, "", uc.now())
	default:
		err = domain.CanTransition(domain.Status(ap.Status), target)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"status": string(target)},
	})

	return ap, nil
}

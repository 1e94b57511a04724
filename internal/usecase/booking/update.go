package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/esthetic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/timezone"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/usecase/calendarcfg"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/validators"
)

// UpdateInput é parcial: só os campos presentes são alterados. ID nunca
// muda e status não passa por aqui — mudança de status é ciclo de vida.
type UpdateInput struct {
	ClientName  *string
	ClientPhone *string
	ClientEmail *string

	ProfessionalID *string
	ServiceID      *string

	Date      *string
	StartTime *string

	PriceCharged *float64
	Notes        *string
}

type UpdateBooking struct {
	repo   domain.Repository
	config *calendarcfg.Resolve
	audit  *audit.Dispatcher

	now func() time.Time
}

func NewUpdateBooking(
	repo domain.Repository,
	config *calendarcfg.Resolve,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:   repo,
		config: config,
		audit:  audit,
		now:    timezone.Now,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	id string,
	in UpdateInput,
) (*models.Appointment, error) {

	if uuid.Validate(id) != nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado")
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := validateUpdateInput(in, uc.now())
	if len(fields) > 0 {
		return nil, httperr.ErrValidation(fields)
	}

	// -------- Campos simples --------

	if in.ClientName != nil {
		ap.ClientName = strings.TrimSpace(*in.ClientName)
	}
	if in.ClientPhone != nil {
		phone, _ := validators.ParsePhone(*in.ClientPhone)
		ap.ClientPhone = phone.String()
	}
	if in.ClientEmail != nil {
		if *in.ClientEmail == "" {
			ap.ClientEmail = ""
		} else {
			email, _ := validators.ParseEmail(*in.ClientEmail)
			ap.ClientEmail = email.String()
		}
	}
	if in.PriceCharged != nil {
		ap.PriceCharged = *in.PriceCharged
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	// -------- Campos de agenda: exigem revalidação completa --------

	scheduleChanged := false

	if in.ProfessionalID != nil && *in.ProfessionalID != ap.ProfessionalID {
		ap.ProfessionalID = *in.ProfessionalID
		scheduleChanged = true
	}
	if in.ServiceID != nil && *in.ServiceID != ap.ServiceID {
		ap.ServiceID = *in.ServiceID
		scheduleChanged = true
	}
	if in.Date != nil && *in.Date != ap.Date {
		ap.Date = *in.Date
		scheduleChanged = true
	}
	if in.StartTime != nil && *in.StartTime != ap.StartTime {
		ap.StartTime = *in.StartTime
		scheduleChanged = true
	}

	if !scheduleChanged {
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_updated",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
		return ap, nil
	}

	// Remarcação só faz sentido enquanto o agendamento está vivo.
	if domain.Status(ap.Status).IsTerminal() {
		return nil, httperr.ErrInvalidTransition(
			"Agendamento encerrado não pode ser remarcado",
		)
	}

	cfg, err := uc.config.Execute(ctx)
	if err != nil {
		return nil, err
	}

	if !domain.WithinBookingWindow(cfg, ap.Date, uc.now()) {
		return nil, httperr.ErrOutOfWindow("Data fora da janela de agendamento permitida")
	}

	prof, err := uc.repo.GetProfessional(ctx, ap.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if !prof.Active {
		return nil, httperr.ErrNotFound("professional_not_found", "Profissional não encontrado")
	}

	svc, err := uc.repo.GetService(ctx, ap.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, httperr.ErrNotFound("service_not_found", "Serviço não encontrado")
	}

	// Preço não é re-derivado na remarcação, mesmo trocando o serviço;
	// só muda com valor_cobrado explícito.
	end, err := domain.ResolveSlot(cfg, ap.StartTime, svc.DurationMin)
	if err != nil {
		return nil, err
	}
	ap.EndTime = end

	day, err := uc.repo.ListAppointmentsForDay(ctx, ap.ProfessionalID, ap.Date)
	if err != nil {
		return nil, err
	}
	if !domain.IsFreeExcluding(ap.StartTime, ap.EndTime, ap.ID, day) {
		return nil, httperr.ErrConflict("Horário não disponível")
	}

	if err := uc.repo.UpdateAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func validateUpdateInput(in UpdateInput, now time.Time) []httperr.FieldError {
	var fields []httperr.FieldError
	addField := func(field, message string) {
		fields = append(fields, httperr.FieldError{Field: field, Message: message})
	}

	if in.ClientName != nil && len(strings.TrimSpace(*in.ClientName)) < 3 {
		addField("cliente_nome", "Nome do cliente deve ter pelo menos 3 caracteres")
	}

	if in.ClientPhone != nil {
		if _, err := validators.ParsePhone(*in.ClientPhone); err != nil {
			addField("cliente_telefone", "Telefone inválido")
		}
	}

	if in.ClientEmail != nil && *in.ClientEmail != "" {
		if _, err := validators.ParseEmail(*in.ClientEmail); err != nil {
			addField("cliente_email", "Email inválido")
		}
	}

	if in.ProfessionalID != nil && uuid.Validate(*in.ProfessionalID) != nil {
		addField("profissional_id", "ID do profissional inválido")
	}

	if in.ServiceID != nil && uuid.Validate(*in.ServiceID) != nil {
		addField("servico_id", "ID do serviço inválido")
	}

	if in.Date != nil {
		if !domain.IsDate(*in.Date) {
			addField("data", "Data inválida. Use formato YYYY-MM-DD")
		} else if *in.Date < now.Format(domain.DateLayout) {
			addField("data", "Não é possível agendar para datas passadas")
		}
	}

	if in.StartTime != nil && !domain.IsClock(*in.StartTime) {
		addField("hora_inicio", "Hora inválida. Use formato HH:MM (24h)")
	}

	if in.PriceCharged != nil && *in.PriceCharged < 0 {
		addField("valor_cobrado", "Valor cobrado não pode ser negativo")
	}

	return fields
}

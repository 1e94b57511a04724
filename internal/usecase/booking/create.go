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

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail string

	ProfessionalID string
	ServiceID      string

	Date      string
	StartTime string

	// Valor cobrado explícito; quando nil, vale o preço do serviço.
	PriceCharged *float64

	Status string
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	config *calendarcfg.Resolve
	audit  *audit.Dispatcher

	now func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	config *calendarcfg.Resolve,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		config: config,
		audit:  audit,
		now:    timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Validação estrutural — acumula todos os campos
	// --------------------------------------------------
	phone, email, fields := validateCreateInput(in, uc.now())
	if len(fields) > 0 {
		return nil, httperr.ErrValidation(fields)
	}

	// --------------------------------------------------
	// 2. Janela de antecedência
	// --------------------------------------------------
	cfg, err := uc.config.Execute(ctx)
	if err != nil {
		return nil, err
	}

	if !domain.WithinBookingWindow(cfg, in.Date, uc.now()) {
		return nil, httperr.ErrOutOfWindow(
			"Data fora da janela de agendamento permitida",
		)
	}

	// --------------------------------------------------
	// 3. Profissional
	// --------------------------------------------------
	prof, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if !prof.Active {
		return nil, httperr.ErrNotFound("professional_not_found", "Profissional não encontrado")
	}

	// --------------------------------------------------
	// 4. Serviço → duração e preço
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, httperr.ErrNotFound("service_not_found", "Serviço não encontrado")
	}

	// --------------------------------------------------
	// 5. Hora fim derivada, dentro do expediente e do mesmo dia
	// --------------------------------------------------
	end, err := domain.ResolveSlot(cfg, in.StartTime, svc.DurationMin)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Conflito de horário
	// --------------------------------------------------
	day, err := uc.repo.ListAppointmentsForDay(ctx, in.ProfessionalID, in.Date)
	if err != nil {
		return nil, err
	}
	if !domain.IsFree(in.StartTime, end, day) {
		return nil, httperr.ErrConflict("Horário não disponível")
	}

	// --------------------------------------------------
	// 7. Valor cobrado e status padrão
	// --------------------------------------------------
	price := svc.Price
	if in.PriceCharged != nil {
		price = *in.PriceCharged
	}

	status := in.Status
	if status == "" {
		status = string(domain.StatusScheduled)
	}

	// --------------------------------------------------
	// 8. Persistência atômica (re-verifica conflito na transação)
	// --------------------------------------------------
	ap := &models.Appointment{
		ProfessionalID: in.ProfessionalID,
		ServiceID:      in.ServiceID,
		Date:           in.Date,
		StartTime:      in.StartTime,
		EndTime:        end,
		Status:         status,
		ClientName:     strings.TrimSpace(in.ClientName),
		ClientPhone:    phone.String(),
		ClientEmail:    email.String(),
		PriceCharged:   price,
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 9. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// ======================================================
// VALIDATION
// ======================================================

func validateCreateInput(
	in CreateInput,
	now time.Time,
) (validators.PhoneNumber, validators.Email, []httperr.FieldError) {

	var fields []httperr.FieldError
	addField := func(field, message string) {
		fields = append(fields, httperr.FieldError{Field: field, Message: message})
	}

	if len(strings.TrimSpace(in.ClientName)) < 3 {
		addField("cliente_nome", "Nome do cliente deve ter pelo menos 3 caracteres")
	}

	phone, err := validators.ParsePhone(in.ClientPhone)
	if in.ClientPhone == "" {
		addField("cliente_telefone", "Telefone é obrigatório")
	} else if err != nil {
		addField("cliente_telefone", "Telefone inválido")
	}

	var email validators.Email
	if in.ClientEmail != "" {
		email, err = validators.ParseEmail(in.ClientEmail)
		if err != nil {
			addField("cliente_email", "Email inválido")
		}
	}

	if in.ProfessionalID == "" {
		addField("profissional_id", "Profissional é obrigatório")
	} else if uuid.Validate(in.ProfessionalID) != nil {
		addField("profissional_id", "ID do profissional inválido")
	}

	if in.ServiceID == "" {
		addField("servico_id", "Serviço é obrigatório")
	} else if uuid.Validate(in.ServiceID) != nil {
		addField("servico_id", "ID do serviço inválido")
	}

	if in.Date == "" {
		addField("data", "Data é obrigatória")
	} else if !domain.IsDate(in.Date) {
		addField("data", "Data inválida. Use formato YYYY-MM-DD")
	} else if in.Date < now.Format(domain.DateLayout) {
		addField("data", "Não é possível agendar para datas passadas")
	}

	if in.StartTime == "" {
		addField("hora_inicio", "Hora de início é obrigatória")
	} else if !domain.IsClock(in.StartTime) {
		addField("hora_inicio", "Hora inválida. Use formato HH:MM (24h)")
	}

	if in.Status != "" && !domain.Status(in.Status).IsValid() {
		addField("status", "Status inválido")
	}

	if in.PriceCharged != nil && *in.PriceCharged < 0 {
		addField("valor_cobrado", "Valor cobrado não pode ser negativo")
	}

	return phone, email, fields
}

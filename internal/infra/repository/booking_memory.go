package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/esthetic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

// BookingMemoryRepository guarda tudo em memória atrás de um mutex único,
// que serializa o check-then-insert do mesmo jeito que a transação com
// lock do Postgres. Serve para os testes de use case e para rodar a API
// sem banco em desenvolvimento.
type BookingMemoryRepository struct {
	mu sync.Mutex

	configs       []models.CalendarConfig
	professionals map[string]models.Professional
	services      map[string]models.Service
	appointments  map[string]models.Appointment
}

func NewBookingMemoryRepository() *BookingMemoryRepository {
	return &BookingMemoryRepository{
		professionals: make(map[string]models.Professional),
		services:      make(map[string]models.Service),
		appointments:  make(map[string]models.Appointment),
	}
}

// ctxGuard honra o prazo do chamador do mesmo jeito que o repositório
// gorm: contexto vencido nunca conclui a operação, vira Unavailable.
func ctxGuard(ctx context.Context) error {
	if ctx.Err() != nil {
		return httperr.ErrUnavailable("Armazenamento indisponível. Tente novamente.")
	}
	return nil
}

// -------- Seeds (sem equivalente em SQL; usados em testes e dev) --------

func (r *BookingMemoryRepository) AddProfessional(p models.Professional) models.Professional {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.professionals[p.ID] = p
	return p
}

func (r *BookingMemoryRepository) AddService(s models.Service) models.Service {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	r.services[s.ID] = s
	return s
}

// -------- Calendar config --------

func (r *BookingMemoryRepository) GetCalendarConfig(ctx context.Context) (*models.CalendarConfig, error) {
	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.configs) == 0 {
		return nil, nil
	}

	cfg := r.configs[len(r.configs)-1]
	return &cfg, nil
}

func (r *BookingMemoryRepository) SaveCalendarConfig(ctx context.Context, cfg *models.CalendarConfig) error {
	if err := ctxGuard(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cfg.ID = uint(len(r.configs) + 1)
	r.configs = append(r.configs, *cfg)
	return nil
}

// -------- Professional --------

func (r *BookingMemoryRepository) GetProfessional(ctx context.Context, id string) (*models.Professional, error) {
	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.professionals[id]
	if !ok {
		return nil, httperr.ErrNotFound("professional_not_found", "Profissional não encontrado")
	}
	return &p, nil
}

func (r *BookingMemoryRepository) ListActiveProfessionals(ctx context.Context) ([]models.Professional, error) {
	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Professional
	for _, p := range r.professionals {
		if p.Active {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// -------- Service --------

func (r *BookingMemoryRepository) GetService(ctx context.Context, id string) (*models.Service, error) {
	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok {
		return nil, httperr.ErrNotFound("service_not_found", "Serviço não encontrado")
	}
	return &s, nil
}

// -------- Appointment --------

func (r *BookingMemoryRepository) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado")
	}
	return &ap, nil
}

func (r *BookingMemoryRepository) ListAppointmentsForDay(
	ctx context.Context,
	professionalID string,
	date string,
) ([]models.Appointment, error) {

	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.dayLocked(professionalID, date), nil
}

func (r *BookingMemoryRepository) dayLocked(professionalID, date string) []models.Appointment {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ProfessionalID != professionalID || ap.Date != date {
			continue
		}
		if !domain.Status(ap.Status).BlocksSlot() {
			continue
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

func (r *BookingMemoryRepository) CreateAppointmentIfFree(ctx context.Context, ap *models.Appointment) error {
	if err := ctxGuard(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	day := r.dayLocked(ap.ProfessionalID, ap.Date)
	if !domain.IsFree(ap.StartTime, ap.EndTime, day) {
		return httperr.ErrConflict("Conflito de horário. Já existe um agendamento neste período.")
	}

	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *BookingMemoryRepository) UpdateAppointmentIfFree(ctx context.Context, ap *models.Appointment) error {
	if err := ctxGuard(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[ap.ID]; !ok {
		return httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado")
	}

	day := r.dayLocked(ap.ProfessionalID, ap.Date)
	if !domain.IsFreeExcluding(ap.StartTime, ap.EndTime, ap.ID, day) {
		return httperr.ErrConflict("Conflito de horário. Já existe um agendamento neste período.")
	}

	r.appointments[ap.ID] = *ap
	return nil
}

func (r *BookingMemoryRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := ctxGuard(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[ap.ID]; !ok {
		return httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado")
	}

	r.appointments[ap.ID] = *ap
	return nil
}

func (r *BookingMemoryRepository) ListAppointments(
	ctx context.Context,
	f domain.AppointmentFilter,
) ([]models.Appointment, error) {

	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if f.DateFrom != "" && ap.Date < f.DateFrom {
			continue
		}
		if f.DateTo != "" && ap.Date > f.DateTo {
			continue
		}
		if f.ProfessionalID != "" && ap.ProfessionalID != f.ProfessionalID {
			continue
		}
		if f.Status != "" && ap.Status != f.Status {
			continue
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].StartTime > out[j].StartTime
	})

	return out, nil
}

// Compile-time check
var _ domain.Repository = (*BookingMemoryRepository)(nil)

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/esthetic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

const pgUniqueViolation = "23505"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// translate mapeia erros de infraestrutura para a taxonomia da API:
// timeout/cancelamento vira indisponibilidade (503), violação do índice
// único de slot vira conflito (409).
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return httperr.ErrUnavailable("Banco de dados indisponível. Tente novamente.")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return httperr.ErrConflict("Conflito de horário. Já existe um agendamento neste período.")
	}

	return err
}

// --------------------------------------------------
// Calendar config
// --------------------------------------------------

func (r *BookingGormRepository) GetCalendarConfig(
	ctx context.Context,
) (*models.CalendarConfig, error) {

	var cfg models.CalendarConfig
	err := r.db.WithContext(ctx).
		Order("id DESC").
		First(&cfg).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}

	return &cfg, nil
}

func (r *BookingGormRepository) SaveCalendarConfig(
	ctx context.Context,
	cfg *models.CalendarConfig,
) error {
	// sempre insere uma linha nova; a mais recente vale
	cfg.ID = 0
	return translate(r.db.WithContext(ctx).Create(cfg).Error)
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *BookingGormRepository) GetProfessional(
	ctx context.Context,
	id string,
) (*models.Professional, error) {

	var prof models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&prof).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("professional_not_found", "Profissional não encontrado")
		}
		return nil, translate(err)
	}

	return &prof, nil
}

func (r *BookingGormRepository) ListActiveProfessionals(
	ctx context.Context,
) ([]models.Professional, error) {

	var profs []models.Professional
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&profs).Error; err != nil {
		return nil, translate(err)
	}

	return profs, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&svc).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service_not_found", "Serviço não encontrado")
		}
		return nil, translate(err)
	}

	return &svc, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Professional").
		Preload("Service").
		Where("id = ?", id).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado")
		}
		return nil, translate(err)
	}

	return &ap, nil
}

func (r *BookingGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	professionalID string,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND date = ? AND status IN ?",
			professionalID, date, busyStatuses(),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, translate(err)
	}

	return apps, nil
}

// CreateAppointmentIfFree tranca os agendamentos do profissional no dia,
// re-verifica a sobreposição e insere — tudo na mesma transação. O índice
// único parcial em (professional_id, date, start_time) é a segunda linha
// de defesa, convertida em conflito pelo translate.
func (r *BookingGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Tranca a linha do profissional antes de checar a sobreposição.
		// Só trancar os agendamentos conflitantes não basta: duas
		// transações simultâneas com inícios diferentes (10:00 e 10:30)
		// não veriam linha nenhuma para trancar e ambas passariam na
		// checagem; o índice único parcial só pega inícios idênticos.
		if err := lockProfessional(tx, ap.ProfessionalID); err != nil {
			return err
		}

		var conflicts []models.Appointment
		if err := tx.
			Where(
				"professional_id = ? AND date = ? AND status IN ? AND start_time < ? AND end_time > ?",
				ap.ProfessionalID, ap.Date, busyStatuses(), ap.EndTime, ap.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrConflict("Conflito de horário. Já existe um agendamento neste período.")
		}

		return tx.Create(ap).Error
	})

	return translate(err)
}

func (r *BookingGormRepository) UpdateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := lockProfessional(tx, ap.ProfessionalID); err != nil {
			return err
		}

		var conflicts []models.Appointment
		if err := tx.
			Where(
				"professional_id = ? AND date = ? AND status IN ? AND start_time < ? AND end_time > ? AND id <> ?",
				ap.ProfessionalID, ap.Date, busyStatuses(), ap.EndTime, ap.StartTime, ap.ID,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrConflict("Conflito de horário. Já existe um agendamento neste período.")
		}

		return tx.Save(ap).Error
	})

	return translate(err)
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translate(r.db.WithContext(ctx).Save(ap).Error)
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	f domain.AppointmentFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Professional").
		Preload("Service")

	if f.DateFrom != "" {
		q = q.Where("date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("date <= ?", f.DateTo)
	}
	if f.ProfessionalID != "" {
		q = q.Where("professional_id = ?", f.ProfessionalID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var apps []models.Appointment
	if err := q.
		Order("date DESC").
		Order("start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, translate(err)
	}

	return apps, nil
}

// lockProfessional serializa os agendamentos concorrentes de um mesmo
// profissional via SELECT ... FOR UPDATE na linha dele.
func lockProfessional(tx *gorm.DB, professionalID string) error {
	var prof models.Professional
	return tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", professionalID).
		First(&prof).Error
}

func busyStatuses() []string {
	return []string{
		string(domain.StatusScheduled),
		string(domain.StatusConfirmed),
		string(domain.StatusCompleted),
	}
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)

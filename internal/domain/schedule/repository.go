package schedule

import (
	"context"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

// AppointmentFilter parametriza a listagem da agenda.
type AppointmentFilter struct {
	DateFrom       string
	DateTo         string
	ProfessionalID string
	Status         string
}

// Repository é o contrato de persistência do núcleo de agendamento.
// É injetado explicitamente nos use cases — nada de cliente global.
type Repository interface {
	// -------- Calendar config --------
	// GetCalendarConfig retorna a configuração mais recente ou nil
	// quando nenhuma foi persistida.
	GetCalendarConfig(ctx context.Context) (*models.CalendarConfig, error)

	SaveCalendarConfig(ctx context.Context, cfg *models.CalendarConfig) error

	// -------- Professional --------
	GetProfessional(ctx context.Context, id string) (*models.Professional, error)

	ListActiveProfessionals(ctx context.Context) ([]models.Professional, error)

	// -------- Service --------
	GetService(ctx context.Context, id string) (*models.Service, error)

	// -------- Appointment --------
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)

	// ListAppointmentsForDay retorna os agendamentos que bloqueiam horário
	// do profissional na data, ordenados por hora de início.
	ListAppointmentsForDay(ctx context.Context, professionalID, date string) ([]models.Appointment, error)

	// CreateAppointmentIfFree faz a verificação de conflito e a inserção
	// de forma indivisível: sob requisições concorrentes para o mesmo
	// profissional/data/intervalo, no máximo uma vence; as demais recebem
	// conflito.
	CreateAppointmentIfFree(ctx context.Context, ap *models.Appointment) error

	// UpdateAppointmentIfFree re-verifica o conflito ignorando o próprio
	// agendamento e grava na mesma transação.
	UpdateAppointmentIfFree(ctx context.Context, ap *models.Appointment) error

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	ListAppointments(ctx context.Context, f AppointmentFilter) ([]models.Appointment, error)
}

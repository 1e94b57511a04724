package repository

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

func expiredContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	t.Cleanup(cancel)
	return ctx
}

func TestMemoryRepositoryContextoVencidoNaoConclui(t *testing.T) {
	repo := NewBookingMemoryRepository()
	prof := repo.AddProfessional(models.Professional{Name: "Ana", Active: true})

	ap := &models.Appointment{
		ProfessionalID: prof.ID,
		Date:           "2026-03-15",
		StartTime:      "10:00",
		EndTime:        "11:00",
		Status:         "scheduled",
		ClientName:     "Maria Silva",
	}

	err := repo.CreateAppointmentIfFree(expiredContext(t), ap)
	if !httperr.IsKind(err, httperr.KindUnavailable) {
		t.Fatalf("contexto vencido deveria responder Unavailable, veio %v", err)
	}

	// nada pode ter sido gravado
	day, err := repo.ListAppointmentsForDay(context.Background(), prof.ID, "2026-03-15")
	if err != nil {
		t.Fatalf("ListAppointmentsForDay: %v", err)
	}
	if len(day) != 0 {
		t.Fatalf("agendamento foi gravado apesar do prazo estourado: %+v", day)
	}
}

func TestMemoryRepositoryContextoVencidoNasLeituras(t *testing.T) {
	repo := NewBookingMemoryRepository()
	prof := repo.AddProfessional(models.Professional{Name: "Ana", Active: true})

	ctx := expiredContext(t)

	if _, err := repo.GetProfessional(ctx, prof.ID); !httperr.IsKind(err, httperr.KindUnavailable) {
		t.Errorf("GetProfessional: esperava Unavailable, veio %v", err)
	}
	if _, err := repo.GetCalendarConfig(ctx); !httperr.IsKind(err, httperr.KindUnavailable) {
		t.Errorf("GetCalendarConfig: esperava Unavailable, veio %v", err)
	}
	if _, err := repo.GetAppointment(ctx, "qualquer"); !httperr.IsKind(err, httperr.KindUnavailable) {
		t.Errorf("GetAppointment: esperava Unavailable, veio %v", err)
	}
}

func TestMemoryRepositoryConflitoComIniciosDiferentes(t *testing.T) {
	repo := NewBookingMemoryRepository()
	prof := repo.AddProfessional(models.Professional{Name: "Ana", Active: true})
	ctx := context.Background()

	first := &models.Appointment{
		ProfessionalID: prof.ID,
		Date:           "2026-03-15",
		StartTime:      "10:00",
		EndTime:        "11:00",
		Status:         "scheduled",
	}
	if err := repo.CreateAppointmentIfFree(ctx, first); err != nil {
		t.Fatalf("primeiro: %v", err)
	}

	// início diferente, intervalo sobreposto: a checagem precisa pegar
	// mesmo sem colisão exata de start_time
	second := &models.Appointment{
		ProfessionalID: prof.ID,
		Date:           "2026-03-15",
		StartTime:      "10:30",
		EndTime:        "11:30",
		Status:         "scheduled",
	}
	err := repo.CreateAppointmentIfFree(ctx, second)
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("esperava conflito, veio %v", err)
	}
}

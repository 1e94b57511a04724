package schedule

import (
	"time"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel é o soft delete: o registro permanece, só o status muda e o
// horário volta a aparecer livre na disponibilidade.
func Cancel(ap *models.Appointment, reason string, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCancelled); err != nil {
		return err
	}

	note := "Agendamento cancelado"
	if reason != "" {
		note = "Cancelado: " + reason
	}
	if ap.Notes != "" {
		ap.Notes = ap.Notes + " | " + note
	} else {
		ap.Notes = note
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Confirm(ap *models.Appointment) error {
	if err := CanTransition(Status(ap.Status), StatusConfirmed); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCompleted); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment) error {
	if err := CanTransition(Status(ap.Status), StatusNoShow); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	return nil
}

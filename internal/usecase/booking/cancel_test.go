package booking

import (
	"context"
	"testing"

	domain "github.com/BruksfildServices01/esthetic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
)

func TestCancelBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create.Execute(ctx, f.input())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cancelled, err := f.cancel.Execute(ctx, ap.ID, "cliente desmarcou")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if cancelled.Status != string(domain.StatusCancelled) {
		t.Errorf("status = %s", cancelled.Status)
	}
	if cancelled.CancelledAt == nil {
		t.Error("CancelledAt não preenchido")
	}

	// registro permanece consultável depois do soft delete
	stored, err := f.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		t.Fatalf("GetAppointment: %v", err)
	}
	if stored.Status != string(domain.StatusCancelled) {
		t.Errorf("status persistido = %s", stored.Status)
	}
}

func TestCancelBookingLiberaOHorario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create.Execute(ctx, f.input())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := f.cancel.Execute(ctx, ap.ID, ""); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// o mesmo intervalo pode ser reocupado
	if _, err := f.create.Execute(ctx, f.input()); err != nil {
		t.Fatalf("horário cancelado deveria aceitar novo agendamento: %v", err)
	}
}

func TestCancelBookingIdempotente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create.Execute(ctx, f.input())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := f.cancel.Execute(ctx, ap.ID, "motivo original")
	if err != nil {
		t.Fatalf("primeiro cancel: %v", err)
	}

	second, err := f.cancel.Execute(ctx, ap.ID, "outro motivo")
	if err != nil {
		t.Fatalf("cancelar de novo deveria ser no-op: %v", err)
	}

	if second.Notes != first.Notes {
		t.Errorf("segundo cancelamento alterou as notas: %q vs %q", second.Notes, first.Notes)
	}
}

func TestCancelBookingConcluidoFalha(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create.Execute(ctx, f.input())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := f.transition.Execute(ctx, ap.ID, domain.StatusConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if _, err := f.transition.Execute(ctx, ap.ID, domain.StatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}

	_, err = f.cancel.Execute(ctx, ap.ID, "")
	if !httperr.IsKind(err, httperr.KindInvalidTransition) {
		t.Fatalf("cancelar concluído deveria falhar com transição inválida, veio %v", err)
	}
}

func TestCancelBookingInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.cancel.Execute(context.Background(), "8b9e8a7e-0c53-4a64-9f3e-111111111111", "")
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("esperava not found, veio %v", err)
	}

	// id que nem é uuid não chega no repositório
	_, err = f.cancel.Execute(context.Background(), "abc", "")
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("esperava not found, veio %v", err)
	}
}

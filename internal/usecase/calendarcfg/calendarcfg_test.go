package calendarcfg

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/esthetic-scheduler/internal/infra/repository"
)

func TestResolveSemConfiguracaoUsaPadroes(t *testing.T) {
	repo := infraRepo.NewBookingMemoryRepository()
	uc := NewResolve(repo, nil)

	cfg, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if cfg.OpeningTime != "08:00" || cfg.ClosingTime != "21:00" {
		t.Errorf("expediente padrão errado: %s-%s", cfg.OpeningTime, cfg.ClosingTime)
	}
	if cfg.SlotIntervalMin != 30 || cfg.AdvanceBookingDays != 30 {
		t.Errorf("padrões errados: %d min, %d dias", cfg.SlotIntervalMin, cfg.AdvanceBookingDays)
	}
}

func TestUpdateEResolve(t *testing.T) {
	repo := infraRepo.NewBookingMemoryRepository()
	ctx := context.Background()

	update := NewUpdate(repo, nil, nil)
	resolve := NewResolve(repo, nil)

	saved, err := update.Execute(ctx, "", UpdateInput{
		OpeningTime:        "09:00",
		ClosingTime:        "18:00",
		SlotIntervalMin:    15,
		AdvanceBookingDays: 60,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if saved.ID == 0 {
		t.Error("configuração salva sem ID")
	}

	cfg, err := resolve.Execute(ctx)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.OpeningTime != "09:00" || cfg.SlotIntervalMin != 15 {
		t.Errorf("resolve não devolveu a configuração salva: %+v", cfg)
	}
}

func TestUpdateVigeAUltima(t *testing.T) {
	repo := infraRepo.NewBookingMemoryRepository()
	ctx := context.Background()

	update := NewUpdate(repo, nil, nil)

	in := UpdateInput{OpeningTime: "09:00", ClosingTime: "18:00", SlotIntervalMin: 30, AdvanceBookingDays: 30}
	if _, err := update.Execute(ctx, "", in); err != nil {
		t.Fatalf("primeira: %v", err)
	}

	in.OpeningTime = "10:00"
	if _, err := update.Execute(ctx, "", in); err != nil {
		t.Fatalf("segunda: %v", err)
	}

	cfg, err := NewResolve(repo, nil).Execute(ctx)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.OpeningTime != "10:00" {
		t.Errorf("deveria valer a última configuração: %s", cfg.OpeningTime)
	}
}

func TestUpdateInvalida(t *testing.T) {
	repo := infraRepo.NewBookingMemoryRepository()

	_, err := NewUpdate(repo, nil, nil).Execute(context.Background(), "", UpdateInput{
		OpeningTime:        "18:00",
		ClosingTime:        "09:00",
		SlotIntervalMin:    30,
		AdvanceBookingDays: 30,
	})
	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("esperava validação, veio %v", err)
	}
}

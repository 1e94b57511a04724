package booking

import (
	"context"
	"testing"

	domain "github.com/BruksfildServices01/esthetic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
)

func TestListBookings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, start := range []string{"09:00", "10:00", "14:00"} {
		in := f.input()
		in.StartTime = start
		if _, err := f.create.Execute(ctx, in); err != nil {
			t.Fatalf("create %s: %v", start, err)
		}
	}

	items, err := f.list.Execute(ctx, domain.AppointmentFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("esperava 3 itens, veio %d", len(items))
	}

	// ordenação decrescente por data e hora
	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		if prev.Date < cur.Date || (prev.Date == cur.Date && prev.StartTime < cur.StartTime) {
			t.Errorf("ordenação errada: %s %s antes de %s %s",
				prev.Date, prev.StartTime, cur.Date, cur.StartTime)
		}
	}
}

func TestListBookingsFiltros(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create.Execute(ctx, f.input())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	in := f.input()
	in.StartTime = "14:00"
	other, err := f.create.Execute(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.cancel.Execute(ctx, other.ID, ""); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// por status
	items, err := f.list.Execute(ctx, domain.AppointmentFilter{Status: "scheduled"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ID != ap.ID {
		t.Errorf("filtro de status errado: %+v", items)
	}

	// cancelados continuam aparecendo na listagem geral
	all, err := f.list.Execute(ctx, domain.AppointmentFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("soft delete não deveria sumir da listagem: %d itens", len(all))
	}

	// por intervalo de datas
	none, err := f.list.Execute(ctx, domain.AppointmentFilter{
		DateFrom: "2026-03-16",
		DateTo:   "2026-03-20",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("intervalo sem agendamentos deveria vir vazio: %+v", none)
	}
}

func TestListBookingsFiltroInvalido(t *testing.T) {
	f := newFixture(t)

	cases := []domain.AppointmentFilter{
		{DateFrom: "ontem"},
		{DateFrom: "2026-03-20", DateTo: "2026-03-10"},
		{ProfessionalID: "nao-e-uuid"},
		{Status: "arquivado"},
	}

	for i, filter := range cases {
		_, err := f.list.Execute(context.Background(), filter)
		if !httperr.IsKind(err, httperr.KindValidation) {
			t.Errorf("caso %d: esperava validação, veio %v", i, err)
		}
	}
}

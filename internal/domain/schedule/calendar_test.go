package schedule

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"8:00", 0, true},
		{"08h00", 0, true},
		{"08:60", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): esperava erro", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, esperava %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatClockInvertParseClock(t *testing.T) {
	for _, hm := range []string{"00:00", "08:30", "13:05", "23:59"} {
		min, err := ParseClock(hm)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", hm, err)
		}
		if got := FormatClock(min); got != hm {
			t.Errorf("FormatClock(ParseClock(%q)) = %q", hm, got)
		}
	}
}

func TestResolveSlot(t *testing.T) {
	cfg := DefaultCalendarConfig()

	end, err := ResolveSlot(cfg, "10:00", 60)
	if err != nil {
		t.Fatalf("ResolveSlot: %v", err)
	}
	if end != "11:00" {
		t.Errorf("fim esperado 11:00, veio %s", end)
	}

	// último encaixe possível do dia
	end, err = ResolveSlot(cfg, "20:30", 30)
	if err != nil {
		t.Fatalf("ResolveSlot no fim do expediente: %v", err)
	}
	if end != "21:00" {
		t.Errorf("fim esperado 21:00, veio %s", end)
	}
}

func TestResolveSlotRejeicoes(t *testing.T) {
	cfg := DefaultCalendarConfig()

	cases := []struct {
		name     string
		start    string
		duration int
	}{
		{"antes do expediente", "07:30", 30},
		{"termina depois do expediente", "20:30", 60},
		{"depois do expediente", "21:00", 30},
		{"fora da grade", "10:15", 30},
		{"cruza a meia-noite", "23:30", 60},
		{"hora inválida", "10h00", 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveSlot(cfg, tc.start, tc.duration)
			if err == nil {
				t.Fatalf("esperava rejeição para %s + %dmin", tc.start, tc.duration)
			}
			if !httperr.IsKind(err, httperr.KindInvalidSlot) {
				t.Errorf("erro deveria ser de slot inválido, veio %v", err)
			}
		})
	}
}

func TestResolveSlotAlinhamentoRelativoAoInicio(t *testing.T) {
	// expediente começando fora da hora cheia: a grade acompanha
	cfg := &models.CalendarConfig{
		OpeningTime:     "08:15",
		ClosingTime:     "18:00",
		SlotIntervalMin: 30,
	}

	if _, err := ResolveSlot(cfg, "09:15", 30); err != nil {
		t.Errorf("09:15 está alinhado à abertura 08:15: %v", err)
	}
	if _, err := ResolveSlot(cfg, "09:00", 30); err == nil {
		t.Error("09:00 não está na grade de 08:15 e deveria ser rejeitado")
	}
}

func TestWithinBookingWindow(t *testing.T) {
	cfg := DefaultCalendarConfig()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		date string
		want bool
	}{
		{"2026-03-10", true},  // hoje
		{"2026-04-09", true},  // exatamente hoje+30
		{"2026-04-10", false}, // um dia além
		{"2026-03-09", false}, // passado
	}

	for _, tc := range cases {
		if got := WithinBookingWindow(cfg, tc.date, now); got != tc.want {
			t.Errorf("WithinBookingWindow(%s) = %v, esperava %v", tc.date, got, tc.want)
		}
	}
}

func TestValidateCalendarConfigAcumulaCampos(t *testing.T) {
	cfg := &models.CalendarConfig{
		OpeningTime:        "25:00",
		ClosingTime:        "nope",
		SlotIntervalMin:    -5,
		AdvanceBookingDays: -1,
	}

	fields := ValidateCalendarConfig(cfg)
	if len(fields) != 4 {
		t.Fatalf("esperava 4 violações, veio %d: %+v", len(fields), fields)
	}
}

func TestValidateCalendarConfigOrdemDoExpediente(t *testing.T) {
	cfg := &models.CalendarConfig{
		OpeningTime:        "21:00",
		ClosingTime:        "08:00",
		SlotIntervalMin:    30,
		AdvanceBookingDays: 30,
	}

	fields := ValidateCalendarConfig(cfg)
	if len(fields) != 1 {
		t.Fatalf("esperava 1 violação, veio %d: %+v", len(fields), fields)
	}
	if fields[0].Field != "inicio_expediente" {
		t.Errorf("campo errado: %s", fields[0].Field)
	}
}

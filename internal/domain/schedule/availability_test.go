package schedule

import (
	"testing"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"identicos", "10:00", "11:00", "10:00", "11:00", true},
		{"parcial no fim", "10:00", "11:00", "10:30", "11:30", true},
		{"parcial no inicio", "10:30", "11:30", "10:00", "11:00", true},
		{"contido", "10:00", "12:00", "10:30", "11:00", true},
		{"contem", "10:30", "11:00", "10:00", "12:00", true},
		{"adjacente depois", "10:00", "11:00", "11:00", "12:00", false},
		{"adjacente antes", "11:00", "12:00", "10:00", "11:00", false},
		{"disjunto", "08:00", "09:00", "14:00", "15:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			if got != tc.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, esperava %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}
}

func TestMarkBusyServicoLongoBloqueiaVariosSlots(t *testing.T) {
	slots, err := Grid(DefaultCalendarConfig())
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}

	// 90 minutos ocupam três slots de 30
	busy := []models.Appointment{
		{StartTime: "10:00", EndTime: "11:30", Status: "scheduled"},
	}

	slots = MarkBusy(slots, busy)

	bloqueados := map[string]bool{"10:00": true, "10:30": true, "11:00": true}
	for _, s := range slots {
		if bloqueados[s.Start] && s.Available {
			t.Errorf("slot %s deveria estar ocupado", s.Start)
		}
		if !bloqueados[s.Start] && !s.Available {
			t.Errorf("slot %s não deveria estar ocupado", s.Start)
		}
	}
}

func TestMarkBusyIgnoraCanceladosEFaltas(t *testing.T) {
	slots, _ := Grid(DefaultCalendarConfig())

	slots = MarkBusy(slots, []models.Appointment{
		{StartTime: "10:00", EndTime: "11:00", Status: "cancelled"},
		{StartTime: "14:00", EndTime: "15:00", Status: "no_show"},
	})

	for _, s := range slots {
		if !s.Available {
			t.Errorf("slot %s bloqueado por agendamento que não ocupa horário", s.Start)
		}
	}
}

func TestIsFree(t *testing.T) {
	day := []models.Appointment{
		{ID: "a1", StartTime: "10:00", EndTime: "11:00", Status: "confirmed"},
	}

	if IsFree("10:30", "11:30", day) {
		t.Error("10:30-11:30 sobrepõe 10:00-11:00 e não deveria estar livre")
	}
	if !IsFree("11:00", "12:00", day) {
		t.Error("11:00-12:00 é adjacente e deveria estar livre")
	}
}

func TestIsFreeExcludingIgnoraOProprioAgendamento(t *testing.T) {
	day := []models.Appointment{
		{ID: "a1", StartTime: "10:00", EndTime: "11:00", Status: "scheduled"},
		{ID: "a2", StartTime: "14:00", EndTime: "15:00", Status: "scheduled"},
	}

	// remarcar a1 deslocando 30min dentro do próprio intervalo
	if !IsFreeExcluding("10:30", "11:30", "a1", day) {
		t.Error("remarcação deveria ignorar o próprio agendamento")
	}

	// mas continua batendo nos outros
	if IsFreeExcluding("14:30", "15:30", "a1", day) {
		t.Error("conflito com a2 deveria ser detectado")
	}
}

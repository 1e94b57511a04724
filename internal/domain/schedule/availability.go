package schedule

import "github.com/BruksfildServices01/esthetic-scheduler/internal/models"

// Overlaps compara os intervalos meio-abertos [aStart, aEnd) e
// [bStart, bEnd). Horários HH:MM comparam na ordem cronológica.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// MarkBusy aplica os agendamentos existentes sobre a grade: um slot fica
// indisponível se sobrepõe qualquer parte de um intervalo ocupado, mesmo
// parcialmente — um serviço longo bloqueia todos os slots que atravessa.
// Agendamentos cancelados e faltas não bloqueiam horário.
func MarkBusy(slots []Slot, appointments []models.Appointment) []Slot {
	for i := range slots {
		for _, ap := range appointments {
			if !Status(ap.Status).BlocksSlot() {
				continue
			}
			if Overlaps(slots[i].Start, slots[i].End, ap.StartTime, ap.EndTime) {
				slots[i].Available = false
				break
			}
		}
	}
	return slots
}

// IsFree verifica um intervalo específico sem montar a grade completa.
func IsFree(start, end string, appointments []models.Appointment) bool {
	return IsFreeExcluding(start, end, "", appointments)
}

// IsFreeExcluding ignora um agendamento específico — usado ao remarcar,
// para que o próprio horário atual não conte como conflito.
func IsFreeExcluding(start, end, excludeID string, appointments []models.Appointment) bool {
	for _, ap := range appointments {
		if ap.ID == excludeID {
			continue
		}
		if !Status(ap.Status).BlocksSlot() {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return false
		}
	}
	return true
}

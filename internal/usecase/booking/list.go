package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/esthetic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/dto"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute devolve a agenda consolidada, ordenada por data e hora de início
// decrescentes. Sem resultados retorna lista vazia, nunca erro.
func (uc *ListBookings) Execute(
	ctx context.Context,
	f domain.AppointmentFilter,
) ([]dto.AgendaItemDTO, error) {

	if fields := validateFilter(f); len(fields) > 0 {
		return nil, httperr.ErrValidation(fields)
	}

	appointments, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AgendaItemDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AgendaItemDTO{
			ID:               ap.ID,
			Date:             ap.Date,
			StartTime:        ap.StartTime,
			EndTime:          ap.EndTime,
			Status:           ap.Status,
			ClientName:       ap.ClientName,
			ClientPhone:      ap.ClientPhone,
			ProfessionalID:   ap.ProfessionalID,
			ProfessionalName: ap.Professional.Name,
			ServiceID:        ap.ServiceID,
			ServiceName:      ap.Service.Name,
			PriceCharged:     ap.PriceCharged,
			Notes:            ap.Notes,
		})
	}

	return out, nil
}

func validateFilter(f domain.AppointmentFilter) []httperr.FieldError {
	var fields []httperr.FieldError
	addField := func(field, message string) {
		fields = append(fields, httperr.FieldError{Field: field, Message: message})
	}

	if f.DateFrom != "" && !domain.IsDate(f.DateFrom) {
		addField("data_inicio", "data_inicio inválida. Use YYYY-MM-DD")
	}
	if f.DateTo != "" && !domain.IsDate(f.DateTo) {
		addField("data_fim", "data_fim inválida. Use YYYY-MM-DD")
	}
	if f.DateFrom != "" && f.DateTo != "" && f.DateFrom > f.DateTo {
		addField("data_inicio", "data_inicio não pode ser depois de data_fim")
	}
	if f.ProfessionalID != "" && uuid.Validate(f.ProfessionalID) != nil {
		addField("profissional_id", "ID do profissional inválido")
	}
	if f.Status != "" && !domain.Status(f.Status).IsValid() {
		addField("status", "Status inválido")
	}

	return fields
}

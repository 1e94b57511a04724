package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/esthetic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/esthetic-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AgendamentoHandler struct {
	createUC     *ucBooking.CreateBooking
	updateUC     *ucBooking.UpdateBooking
	cancelUC     *ucBooking.CancelBooking
	transitionUC *ucBooking.TransitionBooking
	listUC       *ucBooking.ListBookings
}

func NewAgendamentoHandler(
	createUC *ucBooking.CreateBooking,
	updateUC *ucBooking.UpdateBooking,
	cancelUC *ucBooking.CancelBooking,
	transitionUC *ucBooking.TransitionBooking,
	listUC *ucBooking.ListBookings,
) *AgendamentoHandler {
	return &AgendamentoHandler{
		createUC:     createUC,
		updateUC:     updateUC,
		cancelUC:     cancelUC,
		transitionUC: transitionUC,
		listUC:       listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Sem binding:"required": o use case acumula todas as violações de campo
// e responde a lista completa, não só a primeira.
type CreateAgendamentoRequest struct {
	ClienteNome     string   `json:"cliente_nome"`
	ClienteTelefone string   `json:"cliente_telefone"`
	ClienteEmail    string   `json:"cliente_email"`
	ProfissionalID  string   `json:"profissional_id"`
	ServicoID       string   `json:"servico_id"`
	Data            string   `json:"data"`
	HoraInicio      string   `json:"hora_inicio"`
	ValorCobrado    *float64 `json:"valor_cobrado"`
	Status          string   `json:"status"`
	Notas           string   `json:"notas"`
}

type UpdateAgendamentoRequest struct {
	ID     *string `json:"id"`
	Status *string `json:"status"`

	ClienteNome     *string  `json:"cliente_nome"`
	ClienteTelefone *string  `json:"cliente_telefone"`
	ClienteEmail    *string  `json:"cliente_email"`
	ProfissionalID  *string  `json:"profissional_id"`
	ServicoID       *string  `json:"servico_id"`
	Data            *string  `json:"data"`
	HoraInicio      *string  `json:"hora_inicio"`
	ValorCobrado    *float64 `json:"valor_cobrado"`
	Notas           *string  `json:"notas"`
}

type CancelAgendamentoRequest struct {
	Motivo string `json:"motivo"`
}

type StatusAgendamentoRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AgendamentoHandler) Create(c *gin.Context) {
	var req CreateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	ap, err := h.createUC.Execute(ctx, ucBooking.CreateInput{
		ClientName:     req.ClienteNome,
		ClientPhone:    req.ClienteTelefone,
		ClientEmail:    req.ClienteEmail,
		ProfessionalID: req.ProfissionalID,
		ServiceID:      req.ServicoID,
		Date:           req.Data,
		StartTime:      req.HoraInicio,
		PriceCharged:   req.ValorCobrado,
		Status:         req.Status,
		Notes:          req.Notas,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, "Agendamento criado com sucesso", ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AgendamentoHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	items, err := h.listUC.Execute(ctx, domain.AppointmentFilter{
		DateFrom:       c.Query("data_inicio"),
		DateTo:         c.Query("data_fim"),
		ProfessionalID: c.Query("profissional_id"),
		Status:         c.Query("status"),
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AgendamentoHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.ID != nil && *req.ID != id {
		httperr.BadRequest(c, "id_immutable", "ID do agendamento não pode ser alterado.")
		return
	}

	if req.Status != nil {
		httperr.BadRequest(c, "status_not_updatable",
			"Status não pode ser alterado por aqui. Use PATCH /api/agendamentos/:id/status.")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	ap, err := h.updateUC.Execute(ctx, id, ucBooking.UpdateInput{
		ClientName:     req.ClienteNome,
		ClientPhone:    req.ClienteTelefone,
		ClientEmail:    req.ClienteEmail,
		ProfessionalID: req.ProfissionalID,
		ServiceID:      req.ServicoID,
		Date:           req.Data,
		StartTime:      req.HoraInicio,
		PriceCharged:   req.ValorCobrado,
		Notes:          req.Notas,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Message(c, "Agendamento atualizado com sucesso", ap)
}

// ======================================================
// CANCEL (soft delete)
// ======================================================

func (h *AgendamentoHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	// corpo é opcional; só carrega o motivo
	var req CancelAgendamentoRequest
	_ = c.ShouldBindJSON(&req)

	ctx, cancel := requestContext(c)
	defer cancel()

	ap, err := h.cancelUC.Execute(ctx, id, req.Motivo)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Message(c, "Agendamento cancelado com sucesso", ap)
}

// ======================================================
// STATUS (lifecycle)
// ======================================================

func (h *AgendamentoHandler) ChangeStatus(c *gin.Context) {
	id := c.Param("id")

	var req StatusAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status é obrigatório.")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	ap, err := h.transitionUC.Execute(ctx, id, domain.Status(req.Status))
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Message(c, "Status atualizado com sucesso", ap)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	ucBooking "github.com/BruksfildServices01/esthetic-scheduler/internal/usecase/booking"
)

type DisponibilidadeHandler struct {
	availabilityUC *ucBooking.GetAvailability
}

func NewDisponibilidadeHandler(
	availabilityUC *ucBooking.GetAvailability,
) *DisponibilidadeHandler {
	return &DisponibilidadeHandler{availabilityUC: availabilityUC}
}

// Get responde GET /api/disponibilidade/:profissional_id/:data.
// :profissional_id aceita "all" para a grade de todos os ativos.
func (h *DisponibilidadeHandler) Get(c *gin.Context) {
	professionalID := c.Param("profissional_id")
	date := c.Param("data")

	ctx, cancel := requestContext(c)
	defer cancel()

	availability, cfg, err := h.availabilityUC.Execute(ctx, professionalID, date)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    date,
		"config": gin.H{
			"inicio_expediente": cfg.OpeningTime,
			"fim_expediente":    cfg.ClosingTime,
			"intervalo_minutos": cfg.SlotIntervalMin,
		},
		"disponibilidade": availability,
	})
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/middleware"
	ucConfig "github.com/BruksfildServices01/esthetic-scheduler/internal/usecase/calendarcfg"
)

type ConfigHandler struct {
	resolveUC *ucConfig.Resolve
	updateUC  *ucConfig.Update
}

func NewConfigHandler(
	resolveUC *ucConfig.Resolve,
	updateUC *ucConfig.Update,
) *ConfigHandler {
	return &ConfigHandler{resolveUC: resolveUC, updateUC: updateUC}
}

type UpdateConfigRequest struct {
	InicioExpediente string `json:"inicio_expediente" binding:"required"`
	FimExpediente    string `json:"fim_expediente" binding:"required"`
	IntervaloSlots   int    `json:"intervalo_slots" binding:"required"`
	DiasAntecedencia int    `json:"dias_antecedencia" binding:"required"`
}

func (h *ConfigHandler) Get(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	cfg, err := h.resolveUC.Execute(ctx)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "config": cfg})
}

func (h *ConfigHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	cfg, err := h.updateUC.Execute(ctx, userID, ucConfig.UpdateInput{
		OpeningTime:        req.InicioExpediente,
		ClosingTime:        req.FimExpediente,
		SlotIntervalMin:    req.IntervaloSlots,
		AdvanceBookingDays: req.DiasAntecedencia,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Configurações atualizadas com sucesso",
		"config":  cfg,
	})
}

package handlers

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

type ProfissionalHandler struct {
	db *gorm.DB
}

func NewProfissionalHandler(db *gorm.DB) *ProfissionalHandler {
	return &ProfissionalHandler{db: db}
}

// --------- Requests ---------

type CreateProfissionalRequest struct {
	Nome          string `json:"nome"`
	Especialidade string `json:"especialidade"`
	CorAgenda     string `json:"cor_agenda"`
}

type UpdateProfissionalRequest struct {
	Nome          *string `json:"nome,omitempty"`
	Especialidade *string `json:"especialidade,omitempty"`
	CorAgenda     *string `json:"cor_agenda,omitempty"`
	Ativo         *bool   `json:"ativo,omitempty"`
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func validateProfissional(nome, corAgenda string) []httperr.FieldError {
	var fields []httperr.FieldError

	if len(strings.TrimSpace(nome)) < 3 {
		fields = append(fields, httperr.FieldError{
			Field:   "nome",
			Message: "Nome do profissional deve ter pelo menos 3 caracteres",
		})
	}
	if corAgenda != "" && !hexColor.MatchString(corAgenda) {
		fields = append(fields, httperr.FieldError{
			Field:   "cor_agenda",
			Message: "Cor da agenda deve ser em formato hexadecimal (#RRGGBB)",
		})
	}

	return fields
}

// --------- Handlers ---------

func (h *ProfissionalHandler) List(c *gin.Context) {
	var profissionais []models.Professional
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&profissionais).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais")
		return
	}

	httpresp.List(c, profissionais)
}

func (h *ProfissionalHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var prof models.Professional
	if err := h.db.Where("id = ?", id).First(&prof).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_professional", "Erro ao buscar profissional")
		return
	}

	httpresp.OK(c, prof)
}

func (h *ProfissionalHandler) Create(c *gin.Context) {
	var req CreateProfissionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if fields := validateProfissional(req.Nome, req.CorAgenda); len(fields) > 0 {
		httperr.Handle(c, httperr.ErrValidation(fields))
		return
	}

	prof := models.Professional{
		Name:          strings.TrimSpace(req.Nome),
		Specialty:     req.Especialidade,
		CalendarColor: strings.ToUpper(req.CorAgenda),
		Active:        true,
	}

	if err := h.db.Create(&prof).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Erro ao criar profissional")
		return
	}

	httpresp.Created(c, "Profissional criado com sucesso", prof)
}

func (h *ProfissionalHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var prof models.Professional
	if err := h.db.Where("id = ?", id).First(&prof).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_professional", "Erro ao buscar profissional")
		return
	}

	var req UpdateProfissionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Nome != nil {
		prof.Name = strings.TrimSpace(*req.Nome)
	}
	if req.Especialidade != nil {
		prof.Specialty = *req.Especialidade
	}
	if req.CorAgenda != nil {
		prof.CalendarColor = strings.ToUpper(*req.CorAgenda)
	}
	if req.Ativo != nil {
		prof.Active = *req.Ativo
	}

	if fields := validateProfissional(prof.Name, prof.CalendarColor); len(fields) > 0 {
		httperr.Handle(c, httperr.ErrValidation(fields))
		return
	}

	if err := h.db.Save(&prof).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional")
		return
	}

	httpresp.Message(c, "Profissional atualizado com sucesso", prof)
}

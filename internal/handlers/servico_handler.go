package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

type ServicoHandler struct {
	db *gorm.DB
}

func NewServicoHandler(db *gorm.DB) *ServicoHandler {
	return &ServicoHandler{db: db}
}

// --------- Requests ---------

type CreateServicoRequest struct {
	Nome       string  `json:"nome"`
	Descricao  string  `json:"descricao"`
	DuracaoMin int     `json:"duracao_min"`
	Valor      float64 `json:"valor"`
	Categoria  string  `json:"categoria"`
}

type UpdateServicoRequest struct {
	Nome       *string  `json:"nome,omitempty"`
	Descricao  *string  `json:"descricao,omitempty"`
	DuracaoMin *int     `json:"duracao_min,omitempty"`
	Valor      *float64 `json:"valor,omitempty"`
	Categoria  *string  `json:"categoria,omitempty"`
	Ativo      *bool    `json:"ativo,omitempty"`
}

func validateServico(nome string, duracaoMin int, valor float64) []httperr.FieldError {
	var fields []httperr.FieldError

	if len(strings.TrimSpace(nome)) < 3 {
		fields = append(fields, httperr.FieldError{
			Field:   "nome",
			Message: "Nome do serviço deve ter pelo menos 3 caracteres",
		})
	}
	if duracaoMin < 15 || duracaoMin > 240 {
		fields = append(fields, httperr.FieldError{
			Field:   "duracao_min",
			Message: "Duração deve ser entre 15 e 240 minutos",
		})
	}
	if valor < 0 || valor > 10000 {
		fields = append(fields, httperr.FieldError{
			Field:   "valor",
			Message: "Valor inválido",
		})
	}

	return fields
}

// --------- Handlers ---------

func (h *ServicoHandler) List(c *gin.Context) {
	categoria := strings.ToLower(strings.TrimSpace(c.Query("categoria")))

	q := h.db.Where("active = ?", true)
	if categoria != "" {
		q = q.Where("LOWER(category) = ?", categoria)
	}

	var servicos []models.Service
	if err := q.Order("name ASC").Find(&servicos).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços")
		return
	}

	httpresp.List(c, servicos)
}

func (h *ServicoHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var servico models.Service
	if err := h.db.Where("id = ?", id).First(&servico).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço")
		return
	}

	httpresp.OK(c, servico)
}

func (h *ServicoHandler) Create(c *gin.Context) {
	var req CreateServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if fields := validateServico(req.Nome, req.DuracaoMin, req.Valor); len(fields) > 0 {
		httperr.Handle(c, httperr.ErrValidation(fields))
		return
	}

	categoria := strings.ToLower(strings.TrimSpace(req.Categoria))
	if categoria == "" {
		categoria = "geral"
	}

	servico := models.Service{
		Name:        strings.TrimSpace(req.Nome),
		Description: req.Descricao,
		DurationMin: req.DuracaoMin,
		Price:       req.Valor,
		Category:    categoria,
		Active:      true,
	}

	if err := h.db.Create(&servico).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço")
		return
	}

	httpresp.Created(c, "Serviço criado com sucesso", servico)
}

func (h *ServicoHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var servico models.Service
	if err := h.db.Where("id = ?", id).First(&servico).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço")
		return
	}

	var req UpdateServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Nome != nil {
		servico.Name = strings.TrimSpace(*req.Nome)
	}
	if req.Descricao != nil {
		servico.Description = *req.Descricao
	}
	if req.DuracaoMin != nil {
		servico.DurationMin = *req.DuracaoMin
	}
	if req.Valor != nil {
		servico.Price = *req.Valor
	}
	if req.Categoria != nil {
		servico.Category = strings.ToLower(strings.TrimSpace(*req.Categoria))
	}
	if req.Ativo != nil {
		servico.Active = *req.Ativo
	}

	if fields := validateServico(servico.Name, servico.DurationMin, servico.Price); len(fields) > 0 {
		httperr.Handle(c, httperr.ErrValidation(fields))
		return
	}

	if err := h.db.Save(&servico).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço")
		return
	}

	httpresp.Message(c, "Serviço atualizado com sucesso", servico)
}

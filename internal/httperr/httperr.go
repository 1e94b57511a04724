package httperr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"error_code"`
	Message string `json:"error"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func statusForKind(kind Kind) int {
	switch kind {
	case KindValidation, KindOutOfWindow, KindInvalidSlot:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindInvalidTransition:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Handle traduz qualquer erro vindo dos use cases para a resposta HTTP.
// Erros de negócio saem como estão; o resto vira 500 genérico com uma
// referência opaca — o detalhe real fica apenas no log do servidor.
func Handle(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok && be.Kind != KindInternal {
		if be.Kind == KindValidation {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"errors":  be.Fields,
			})
			return
		}
		Write(c, statusForKind(be.Kind), be.Code, be.Message)
		return
	}

	ref := uuid.NewString()
	log.Printf("internal error ref=%s %s %s: %v", ref, c.Request.Method, c.Request.URL.Path, err)

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "Erro interno do servidor",
		"ref":     ref,
	})
}

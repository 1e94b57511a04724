package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// storeTimeout limita cada operação de persistência; estourado, a resposta
// é 503, nunca uma requisição pendurada.
const storeTimeout = 5 * time.Second

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storeTimeout)
}

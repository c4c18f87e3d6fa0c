package httpt

import (
	"errors"
	"net/http"

	"github.com/onexocoder/Escova/internal/entity"

	"github.com/gin-gonic/gin"
)

const (
	_invalidPayloadMessage = "Dados da encomenda inválidos"
	_createFailedMessage   = "Erro ao processar encomenda. Por favor, tente novamente."
	_listFailedMessage     = "Erro ao carregar encomendas"
)

// handleServiceError maps service failures onto the HTTP surface: validation
// problems are client-correctable 400s carrying the field messages verbatim,
// everything else is an opaque 500.
func (h *OrderHandler) handleServiceError(c *gin.Context, err error, op string) {
	log := h.log.Ctx(c.Request.Context())

	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		log.Infow("order rejected by validation",
			"op", op,
			"violations", validationErr.Error(),
			"remote_addr", c.ClientIP(),
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Message: validationErr.Message(),
		})
		return
	}

	log.Errorw(op+" failed",
		"error", err,
		"path", c.Request.URL.Path,
		"remote_addr", c.ClientIP(),
		"user_agent", c.Request.UserAgent(),
	)

	message := _createFailedMessage
	if c.Request.Method == http.MethodGet {
		message = _listFailedMessage
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Message: message,
	})
}

func (h *OrderHandler) handleBindError(c *gin.Context, op string, err error) {
	log := h.log.Ctx(c.Request.Context())

	log.Warnw("malformed order payload",
		"op", op,
		"error", err,
		"remote_addr", c.ClientIP(),
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Message: _invalidPayloadMessage,
	})
}

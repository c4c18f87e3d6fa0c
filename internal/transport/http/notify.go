package httpt

import (
	"net/http"

	"github.com/onexocoder/Escova/internal/entity"

	"github.com/gin-gonic/gin"
)

const _notifyFailedMessage = "Erro ao enviar emails"

// @Summary Notificar encomenda
// @Description Envia o email de notificação ao operador e, se fornecido, a confirmação ao cliente
// @Tags Notifications
// @Accept json
// @Produce json
// @Param notification body entity.Notification true "Dados da encomenda confirmada"
// @Success 200 {object} httpt.NotifyResponse "Notificação enviada"
// @Failure 400 {object} httpt.NotifyResponse "Pedido inválido"
// @Failure 500 {object} httpt.NotifyResponse "Falha total no envio"
// @Router /notify [post]
func (h *OrderHandler) notifyHandler(c *gin.Context) {
	const op = "transport.notifyHandler"

	var notification entity.Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		log := h.log.Ctx(c.Request.Context())
		log.Warnw("malformed notification payload",
			"op", op,
			"error", err,
			"remote_addr", c.ClientIP(),
		)
		c.JSON(http.StatusBadRequest, NotifyResponse{OK: false, Message: _notifyFailedMessage})
		return
	}

	if ok := h.notifySvc.Dispatch(c.Request.Context(), &notification); !ok {
		c.JSON(http.StatusInternalServerError, NotifyResponse{
			OK:      false,
			Message: _notifyFailedMessage,
		})
		return
	}

	c.JSON(http.StatusOK, NotifyResponse{OK: true})
}

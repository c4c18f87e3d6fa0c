package httpt

import (
	"github.com/onexocoder/Escova/internal/service"
	"github.com/onexocoder/Escova/pkg/logger"
	"github.com/onexocoder/Escova/pkg/metric"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderSvc  *service.OrderService
	notifySvc *service.NotificationService
	log       logger.Logger
	metrics   metric.HTTP
	router    *gin.Engine
}

func NewOrderHandler(
	orderSvc *service.OrderService,
	notifySvc *service.NotificationService,
	log logger.Logger,
	metrics metric.HTTP,
) *OrderHandler {
	h := &OrderHandler{
		orderSvc:  orderSvc,
		notifySvc: notifySvc,
		log:       log,
		metrics:   metrics,
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())

	h.router = router

	h.setupRoutes()

	return h
}

func (h *OrderHandler) Engine() *gin.Engine {
	return h.router
}

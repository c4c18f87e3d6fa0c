package httpt

import (
	"context"
	"net/http"
	"time"

	"github.com/onexocoder/Escova/internal/entity"

	"github.com/gin-gonic/gin"
)

const (
	_defaultContextTimeout = 2 * time.Second

	_orderCreatedMessage = "Encomenda recebida com sucesso! Entraremos em contato em breve."
)

// @Summary Criar encomenda
// @Description Valida e regista uma nova encomenda da PetBrush
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body httpt.CreateOrderRequest true "Dados da encomenda"
// @Success 201 {object} httpt.OrderResponse "Encomenda registada"
// @Failure 400 {object} httpt.ErrorResponse "Dados inválidos"
// @Failure 500 {object} httpt.ErrorResponse "Erro interno"
// @Router /orders [post]
func (h *OrderHandler) createOrderHandler(c *gin.Context) {
	const op = "transport.createOrderHandler"

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	order, err := h.orderSvc.CreateOrder(ctx, &entity.Order{
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		PostalCode: req.PostalCode,
		Quantity:   req.Quantity,
	})
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusCreated, OrderResponse{
		Success: true,
		Message: _orderCreatedMessage,
		Order:   order,
	})
}

// @Summary Listar encomendas
// @Description Devolve todas as encomendas por ordem de criação
// @Tags Orders
// @Produce json
// @Success 200 {object} httpt.OrderListResponse "Lista de encomendas"
// @Failure 500 {object} httpt.ErrorResponse "Erro interno"
// @Router /orders [get]
func (h *OrderHandler) listOrdersHandler(c *gin.Context) {
	const op = "transport.listOrdersHandler"

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	orders, err := h.orderSvc.ListOrders(ctx)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, OrderListResponse{Orders: orders})
}

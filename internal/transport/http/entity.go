// nolint: revive
// swagger:meta
package httpt

import "github.com/onexocoder/Escova/internal/entity"

// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	Quantity   int    `json:"quantity"`
}

// swagger:model OrderResponse
type OrderResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Order   *entity.Order `json:"order"`
}

// swagger:model OrderListResponse
type OrderListResponse struct {
	Orders []*entity.Order `json:"orders"`
}

// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// swagger:model NotifyResponse
type NotifyResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

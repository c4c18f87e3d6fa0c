package repository

import (
	"context"
	"sync"

	"github.com/onexocoder/Escova/internal/entity"
)

// MemoryOrderRepository keeps orders in process, in insertion order. It backs
// the memory storage driver for local runs and tests. The mutex serializes
// concurrent appends; callers never see a partially appended order.
type MemoryOrderRepository struct {
	mu     sync.Mutex
	orders []*entity.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) Create(
	_ context.Context,
	order *entity.Order,
) (*entity.Order, error) {
	stored := *order

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.ID == stored.ID {
			return nil, entity.ErrConflictingData
		}
	}

	r.orders = append(r.orders, &stored)

	result := stored
	return &result, nil
}

// GetAll returns a snapshot: later appends do not alter a returned slice.
func (r *MemoryOrderRepository) GetAll(_ context.Context) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]*entity.Order, 0, len(r.orders))
	for _, order := range r.orders {
		copied := *order
		orders = append(orders, &copied)
	}
	return orders, nil
}

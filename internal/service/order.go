package service

import (
	"context"
	"fmt"
	"time"

	"github.com/onexocoder/Escova/internal/entity"
	"github.com/onexocoder/Escova/pkg/logger"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=mock/order.go -package=mock_service

const _slowOperationThreshold = 200 * time.Millisecond

type (
	// OrderValidator checks a candidate order against the schema rules and
	// reports every violated field through *entity.ValidationError.
	OrderValidator interface {
		ValidateOrder(order *entity.Order) error
	}

	// OrderRepository is the backing collection. Create must serialize
	// concurrent appends internally; GetAll returns a snapshot in insertion
	// order.
	OrderRepository interface {
		Create(ctx context.Context, order *entity.Order) (*entity.Order, error)
		GetAll(ctx context.Context) ([]*entity.Order, error)
	}

	// OrderService is the system of record for orders. It owns id assignment
	// and never lets an invalid order reach the collection.
	OrderService struct {
		repo      OrderRepository
		validator OrderValidator
		logger    logger.Logger
	}
)

func NewOrderService(
	repo OrderRepository,
	validator OrderValidator,
	logger logger.Logger,
) *OrderService {
	return &OrderService{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

// CreateOrder validates the candidate, assigns a fresh id and appends the
// order to the collection. A *entity.ValidationError leaves the collection
// untouched; any other failure is a storage fault.
func (s *OrderService) CreateOrder(
	ctx context.Context,
	order *entity.Order,
) (*entity.Order, error) {
	const op = "service.CreateOrder"
	log := s.logger.Ctx(ctx)

	startTime := time.Now()
	defer func() {
		if duration := time.Since(startTime); duration > _slowOperationThreshold {
			log.Warnw("slow service operation",
				"op", op,
				"duration", duration.String(),
			)
		}
	}()

	if err := s.validator.ValidateOrder(order); err != nil {
		log.Infow("order validation failed",
			"op", op,
			"error", err,
		)
		return nil, fmt.Errorf("%s: validate order: %w", op, err)
	}

	order.ID = uuid.New()

	createdOrder, err := s.repo.Create(ctx, order)
	if err != nil {
		log.Errorw("order creation failed",
			"op", op,
			"order_id", order.ID.String(),
			"error", err,
		)
		return nil, fmt.Errorf("%s: create order: %w", op, err)
	}

	log.Infow("order created",
		"op", op,
		"order_id", createdOrder.ID.String(),
		"quantity", createdOrder.Quantity,
		"duration", time.Since(startTime).String(),
	)

	return createdOrder, nil
}

// ListOrders returns every persisted order, oldest first.
func (s *OrderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	const op = "service.ListOrders"
	log := s.logger.Ctx(ctx)

	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Errorw("order listing failed",
			"op", op,
			"error", err,
		)
		return nil, fmt.Errorf("%s: get all orders: %w", op, err)
	}

	return orders, nil
}

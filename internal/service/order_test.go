package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/onexocoder/Escova/internal/entity"
	"github.com/onexocoder/Escova/internal/repository"
	"github.com/onexocoder/Escova/internal/service"
	mock_service "github.com/onexocoder/Escova/internal/service/mock"
	"github.com/onexocoder/Escova/internal/validation"
	"github.com/onexocoder/Escova/pkg/logger"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func generateFakeOrder() *entity.Order {
	return &entity.Order{
		Name:       gofakeit.Name(),
		Phone:      fmt.Sprintf("9%08d", gofakeit.Number(0, 99999999)),
		Address:    gofakeit.Address().Address,
		PostalCode: fmt.Sprintf("%04d-%03d", gofakeit.Number(1000, 9999), gofakeit.Number(1, 999)),
		Quantity:   gofakeit.Number(1, 10),
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		desc    string
		mocks   func(repo *mock_service.MockOrderRepository, validator *mock_service.MockOrderValidator, order *entity.Order)
		wantErr error
	}{
		{
			desc: "Success",
			mocks: func(repo *mock_service.MockOrderRepository, validator *mock_service.MockOrderValidator, order *entity.Order) {
				validator.EXPECT().ValidateOrder(order).Return(nil).Times(1)
				repo.EXPECT().Create(ctx, order).
					DoAndReturn(func(_ context.Context, o *entity.Order) (*entity.Order, error) {
						stored := *o
						return &stored, nil
					}).Times(1)
			},
		},
		{
			desc: "ValidationFailure",
			mocks: func(repo *mock_service.MockOrderRepository, validator *mock_service.MockOrderValidator, order *entity.Order) {
				validator.EXPECT().ValidateOrder(order).Return(&entity.ValidationError{
					Fields: []entity.FieldError{
						{Field: "postalCode", Message: "Código postal inválido (ex: 1000-001)"},
					},
				}).Times(1)
			},
			wantErr: &entity.ValidationError{},
		},
		{
			desc: "StorageFailure",
			mocks: func(repo *mock_service.MockOrderRepository, validator *mock_service.MockOrderValidator, order *entity.Order) {
				validator.EXPECT().ValidateOrder(order).Return(nil).Times(1)
				repo.EXPECT().Create(ctx, order).
					Return(nil, errors.New("connection refused")).Times(1)
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_service.NewMockOrderRepository(ctrl)
			validator := mock_service.NewMockOrderValidator(ctrl)
			order := generateFakeOrder()

			tC.mocks(repo, validator, order)

			svc := service.NewOrderService(repo, validator, logger.NewNop())

			created, err := svc.CreateOrder(ctx, order)

			if tC.wantErr == nil {
				require.NoError(t, err)
				require.NotEqual(t, uuid.Nil, created.ID)
				return
			}

			require.Error(t, err)
			require.Nil(t, created)

			var validationErr *entity.ValidationError
			if errors.As(tC.wantErr, &validationErr) {
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "postalCode", validationErr.Fields[0].Field)
			}
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("PassesThroughSnapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_service.NewMockOrderRepository(ctrl)
		validator := mock_service.NewMockOrderValidator(ctrl)

		orders := []*entity.Order{generateFakeOrder(), generateFakeOrder()}
		repo.EXPECT().GetAll(ctx).Return(orders, nil).Times(1)

		svc := service.NewOrderService(repo, validator, logger.NewNop())

		got, err := svc.ListOrders(ctx)
		require.NoError(t, err)
		require.Equal(t, orders, got)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_service.NewMockOrderRepository(ctrl)
		validator := mock_service.NewMockOrderValidator(ctrl)

		repo.EXPECT().GetAll(ctx).Return(nil, errors.New("pool closed")).Times(1)

		svc := service.NewOrderService(repo, validator, logger.NewNop())

		got, err := svc.ListOrders(ctx)
		require.Error(t, err)
		require.Nil(t, got)
	})
}

// Creating N orders concurrently must yield N distinct ids and a collection
// of exactly N orders.
func TestOrderService_CreateOrderConcurrent(t *testing.T) {
	const goroutines = 50

	ctx := context.Background()

	v, err := validation.New()
	require.NoError(t, err)

	repo := repository.NewMemoryOrderRepository()
	svc := service.NewOrderService(repo, v, logger.NewNop())

	var wg sync.WaitGroup
	ids := make(chan uuid.UUID, goroutines)

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, createErr := svc.CreateOrder(ctx, generateFakeOrder())
			if createErr != nil {
				t.Errorf("concurrent create failed: %v", createErr)
				return
			}
			ids <- created.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uuid.UUID]struct{}, goroutines)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
	require.Len(t, seen, goroutines)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, goroutines)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/onexocoder/Escova/internal/entity"
	"github.com/onexocoder/Escova/pkg/storage/postgres"
	"github.com/onexocoder/Escova/pkg/storage/postgres/transaction"

	"github.com/jackc/pgx/v5/pgconn"
)

const _uniqueViolationCode = "23505"

// OrderRepository is the durable, append-only order collection backed by
// PostgreSQL. Inserts run inside the retrying transaction manager so the
// append is serialized and survives transient connection faults. Listing
// follows insertion order via the created_at column the repository owns.
type OrderRepository struct {
	db        *postgres.Postgres
	txManager transaction.Manager
}

func NewOrderRepository(db *postgres.Postgres, txManager transaction.Manager) *OrderRepository {
	return &OrderRepository{db: db, txManager: txManager}
}

func (r *OrderRepository) Create(
	ctx context.Context,
	order *entity.Order,
) (*entity.Order, error) {
	const op = "repository.order.Create"

	query := r.db.Builder.Insert("orders").
		Columns("id", "name", "phone", "address", "postal_code", "quantity").
		Values(
			order.ID,
			order.Name,
			order.Phone,
			order.Address,
			order.PostalCode,
			order.Quantity,
		).
		Suffix("RETURNING id, name, phone, address, postal_code, quantity")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Order{}
	err = r.txManager.ExecuteInTransaction(ctx, "CreateOrder",
		func(tx postgres.QueryExecuter) error {
			return tx.QueryRow(ctx, sql, args...).Scan(
				&result.ID,
				&result.Name,
				&result.Phone,
				&result.Address,
				&result.PostalCode,
				&result.Quantity,
			)
		},
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == _uniqueViolationCode {
			return nil, entity.ErrConflictingData
		}
		return nil, fmt.Errorf("%s: insert order: %w", op, err)
	}

	return result, nil
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]*entity.Order, error) {
	const op = "repository.order.GetAll"

	query := r.db.Builder.
		Select("id", "name", "phone", "address", "postal_code", "quantity").
		From("orders").
		OrderBy("created_at", "id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	orders := make([]*entity.Order, 0)
	for rows.Next() {
		order := &entity.Order{}
		if err = rows.Scan(
			&order.ID,
			&order.Name,
			&order.Phone,
			&order.Address,
			&order.PostalCode,
			&order.Quantity,
		); err != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, err)
		}
		orders = append(orders, order)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return orders, nil
}

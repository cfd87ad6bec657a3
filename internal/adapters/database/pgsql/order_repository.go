package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	portsrepo "github.com/kbeautyshop/storefront_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

var _ portsrepo.OrderRepositoryFacade = (*OrderRepository)(nil)

func (r *OrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	query := `
        INSERT INTO orders (order_id, cart_key, customer_name, phone, address, payment, memo, items, subtotal_usd, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err = r.db.Exec(ctx, query,
		order.OrderID,
		order.CartKey,
		order.CustomerName,
		order.Phone,
		order.Address,
		string(order.Payment),
		order.Memo,
		items,
		order.SubtotalUSD.String(),
		order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `
        SELECT order_id, cart_key, customer_name, phone, address, payment, memo, items, subtotal_usd, created_at
        FROM orders
        WHERE order_id = $1;
    `
	var (
		order       domain.Order
		payment     string
		items       []byte
		subtotalUSD string
	)
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&order.OrderID,
		&order.CartKey,
		&order.CustomerName,
		&order.Phone,
		&order.Address,
		&payment,
		&order.Memo,
		&items,
		&subtotalUSD,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}

	order.Payment = domain.PaymentMethod(payment)
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	order.SubtotalUSD, err = decimal.NewFromString(subtotalUSD)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order subtotal: %w", err)
	}
	return &order, nil
}

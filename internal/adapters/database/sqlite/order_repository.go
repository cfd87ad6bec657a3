package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	portsrepo "github.com/kbeautyshop/storefront_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

var _ portsrepo.OrderRepositoryFacade = (*OrderRepository)(nil)

func (r *OrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
        INSERT INTO orders (order_id, cart_key, customer_name, phone, address, payment, memo, items, subtotal_usd, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, order.OrderID, order.CartKey, order.CustomerName, order.Phone, order.Address,
		string(order.Payment), order.Memo, items, order.SubtotalUSD.String(), order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

type orderRow struct {
	OrderID      string       `db:"order_id"`
	CartKey      string       `db:"cart_key"`
	CustomerName string       `db:"customer_name"`
	Phone        string       `db:"phone"`
	Address      string       `db:"address"`
	Payment      string       `db:"payment"`
	Memo         string       `db:"memo"`
	Items        []byte       `db:"items"`
	SubtotalUSD  string       `db:"subtotal_usd"`
	CreatedAt    sql.NullTime `db:"created_at"`
}

func (r *OrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var row orderRow
	err := r.db.GetContext(ctx, &row, `
        SELECT order_id, cart_key, customer_name, phone, address, payment, memo, items, subtotal_usd, created_at
        FROM orders
        WHERE order_id = ?
    `, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}

	order := domain.Order{
		OrderID:      row.OrderID,
		CartKey:      row.CartKey,
		CustomerName: row.CustomerName,
		Phone:        row.Phone,
		Address:      row.Address,
		Payment:      domain.PaymentMethod(row.Payment),
		Memo:         row.Memo,
		CreatedAt:    row.CreatedAt.Time,
	}
	if err := json.Unmarshal(row.Items, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	order.SubtotalUSD, err = decimal.NewFromString(row.SubtotalUSD)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order subtotal: %w", err)
	}
	return &order, nil
}

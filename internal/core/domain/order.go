package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is one of the checkout payment options the storefront offers.
type PaymentMethod string

const (
	PaymentCard  PaymentMethod = "card"
	PaymentBank  PaymentMethod = "bank"
	PaymentKakao PaymentMethod = "kakao"
	PaymentNaver PaymentMethod = "naver"
	PaymentPayco PaymentMethod = "payco"
	PaymentCOD   PaymentMethod = "cod"
)

// IsValid reports whether the payment method is a known option.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCard, PaymentBank, PaymentKakao, PaymentNaver, PaymentPayco, PaymentCOD:
		return true
	}
	return false
}

// Order is the checkout hand-off record: a frozen copy of the cart's line
// items and USD subtotal at submission time, plus the order form fields.
type Order struct {
	OrderID      string          `json:"orderID"` // Primary Key (UUID)
	CartKey      string          `json:"cartKey"`
	CustomerName string          `json:"customerName"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Payment      PaymentMethod   `json:"payment"`
	Memo         string          `json:"memo,omitempty"`
	Items        []CartItem      `json:"items"`
	SubtotalUSD  decimal.Decimal `json:"subtotalUsd"`
	CreatedAt    time.Time       `json:"createdAt"`
}

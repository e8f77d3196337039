package domain

import (
	"errors"
	"time"
)

// ErrOrderNotFound indicates that the order is not found.
var ErrOrderNotFound = errors.New("order not found")

// Order types.
const (
	OrderBuy  = "buy"
	OrderSell = "sell"
)

// Order statuses.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order holds an exchange order between two cryptocurrencies.
type Order struct {
	ID           int32     `json:"id"`
	UserID       int32     `json:"userId"`
	Type         string    `json:"type"`
	FromCryptoID int32     `json:"fromCryptoId"`
	ToCryptoID   int32     `json:"toCryptoId"`
	Amount       string    `json:"amount"`
	Price        string    `json:"price"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Clone returns a copy of o.
func (o Order) Clone() Order {
	return o
}

// CreateOrderParams is the input data to place an order.
type CreateOrderParams struct {
	UserID       int32
	Type         string
	FromCryptoID int32
	ToCryptoID   int32
	Amount       string
	Price        string
	Status       string
}

// OrderPatch holds the order fields to overwrite.
type OrderPatch struct {
	Amount *string
	Price  *string
	Status *string
}

// Apply merges p onto o.
func (p OrderPatch) Apply(o *Order) {
	setString(&o.Amount, p.Amount)
	setString(&o.Price, p.Price)
	setString(&o.Status, p.Status)
}

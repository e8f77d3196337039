package domain

import (
	"errors"
	"time"
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidAmount indicates that the amount is not a positive decimal.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Transaction types.
const (
	TransactionBuy      = "buy"
	TransactionSell     = "sell"
	TransactionTransfer = "transfer"
	TransactionReceive  = "receive"
	TransactionSwap     = "swap"
)

// Transaction statuses.
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
)

// Transaction holds a single balance movement record of a user.
type Transaction struct {
	ID        int32     `json:"id"`
	UserID    int32     `json:"userId"`
	Type      string    `json:"type"`
	CryptoID  int32     `json:"cryptoId"`
	Amount    string    `json:"amount"`
	Price     *string   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a copy of t that shares no memory with it.
func (t Transaction) Clone() Transaction {
	t.Price = cloneString(t.Price)
	return t
}

// CreateTransactionParams is the input data to create a transaction.
type CreateTransactionParams struct {
	UserID   int32
	Type     string
	CryptoID int32
	Amount   string
	Price    *string
	Status   string
}

// TransactionPatch holds the transaction fields to overwrite.
type TransactionPatch struct {
	Amount *string
	Price  *string
	Status *string
}

// Apply merges p onto t.
func (p TransactionPatch) Apply(t *Transaction) {
	setString(&t.Amount, p.Amount)
	setString(&t.Status, p.Status)

	if p.Price != nil {
		t.Price = cloneString(p.Price)
	}
}

// SwapParams is the input data for a mocked currency exchange.
type SwapParams struct {
	UserID       int32
	FromCryptoID int32
	ToCryptoID   int32
	Amount       string
}

// SwapResult is the result of a swap.
type SwapResult struct {
	Success     bool        `json:"success"`
	Transaction Transaction `json:"transaction"`
}

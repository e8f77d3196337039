// Package transactionrepo manages repository layer of transactions.
package transactionrepo

import (
	"context"
	"time"

	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/internal/memdb"
	"github.com/go-petr/coin-wallet/pkg/metrics"
)

// RepoMem facilitates transaction repository layer logic.
type RepoMem struct {
	transactions *memdb.Table[domain.Transaction]
}

// NewRepoMem returns transaction RepoMem.
func NewRepoMem(db *memdb.DB) *RepoMem {
	return &RepoMem{
		transactions: db.Transactions,
	}
}

// Create records the transaction and then returns it.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	t, err := r.transactions.Insert(nil, func(id int32) domain.Transaction {
		return domain.Transaction{
			ID:        id,
			UserID:    arg.UserID,
			Type:      arg.Type,
			CryptoID:  arg.CryptoID,
			Amount:    arg.Amount,
			Price:     arg.Price,
			Status:    arg.Status,
			CreatedAt: time.Now().UTC(),
		}
	})
	if err != nil {
		return t, err
	}

	metrics.EntityCreated(metrics.EntityTransaction)

	return t, nil
}

// Get returns the transaction with the given id.
func (r *RepoMem) Get(ctx context.Context, id int32) (domain.Transaction, error) {
	t, ok := r.transactions.Get(id)
	if !ok {
		return t, domain.ErrTransactionNotFound
	}

	return t, nil
}

// ListByOwner returns the transactions of the user in insertion order.
func (r *RepoMem) ListByOwner(ctx context.Context, userID int32) ([]domain.Transaction, error) {
	return r.transactions.Filter(func(t domain.Transaction) bool { return t.UserID == userID }), nil
}

// Update merges the patch onto the transaction with the given id.
func (r *RepoMem) Update(ctx context.Context, id int32, patch domain.TransactionPatch) (domain.Transaction, error) {
	t, ok, _ := r.transactions.Update(id, patch.Apply, nil)
	if !ok {
		return t, domain.ErrTransactionNotFound
	}

	return t, nil
}

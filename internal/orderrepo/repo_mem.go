// Package orderrepo manages repository layer of orders.
package orderrepo

import (
	"context"
	"time"

	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/internal/memdb"
	"github.com/go-petr/coin-wallet/pkg/metrics"
)

// RepoMem facilitates order repository layer logic.
type RepoMem struct {
	orders *memdb.Table[domain.Order]
}

// NewRepoMem returns order RepoMem.
func NewRepoMem(db *memdb.DB) *RepoMem {
	return &RepoMem{
		orders: db.Orders,
	}
}

// Create places the order and then returns it.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateOrderParams) (domain.Order, error) {
	o, err := r.orders.Insert(nil, func(id int32) domain.Order {
		return domain.Order{
			ID:           id,
			UserID:       arg.UserID,
			Type:         arg.Type,
			FromCryptoID: arg.FromCryptoID,
			ToCryptoID:   arg.ToCryptoID,
			Amount:       arg.Amount,
			Price:        arg.Price,
			Status:       arg.Status,
			CreatedAt:    time.Now().UTC(),
		}
	})
	if err != nil {
		return o, err
	}

	metrics.EntityCreated(metrics.EntityOrder)

	return o, nil
}

// Get returns the order with the given id.
func (r *RepoMem) Get(ctx context.Context, id int32) (domain.Order, error) {
	o, ok := r.orders.Get(id)
	if !ok {
		return o, domain.ErrOrderNotFound
	}

	return o, nil
}

// ListByOwner returns the orders of the user in insertion order.
func (r *RepoMem) ListByOwner(ctx context.Context, userID int32) ([]domain.Order, error) {
	return r.orders.Filter(func(o domain.Order) bool { return o.UserID == userID }), nil
}

// Update merges the patch onto the order with the given id.
func (r *RepoMem) Update(ctx context.Context, id int32, patch domain.OrderPatch) (domain.Order, error) {
	o, ok, _ := r.orders.Update(id, patch.Apply, nil)
	if !ok {
		return o, domain.ErrOrderNotFound
	}

	return o, nil
}

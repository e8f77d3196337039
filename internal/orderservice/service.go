// Package orderservice manages business logic layer of orders.
package orderservice

import (
	"context"

	"github.com/go-petr/coin-wallet/internal/domain"
)

// Repo provides data access layer interface needed by order service layer.
type Repo interface {
	Create(ctx context.Context, arg domain.CreateOrderParams) (domain.Order, error)
	Get(ctx context.Context, id int32) (domain.Order, error)
	ListByOwner(ctx context.Context, userID int32) ([]domain.Order, error)
	Update(ctx context.Context, id int32, patch domain.OrderPatch) (domain.Order, error)
}

// Service facilitates order service layer logic.
type Service struct {
	repo Repo
}

// New returns order service.
func New(or Repo) *Service {
	return &Service{repo: or}
}

// Create places the order, pending unless a status is given.
func (s *Service) Create(ctx context.Context, arg domain.CreateOrderParams) (domain.Order, error) {
	if arg.Status == "" {
		arg.Status = domain.OrderPending
	}

	return s.repo.Create(ctx, arg)
}

// Get returns the order with the given id.
func (s *Service) Get(ctx context.Context, id int32) (domain.Order, error) {
	return s.repo.Get(ctx, id)
}

// ListByOwner returns the orders of the user.
func (s *Service) ListByOwner(ctx context.Context, userID int32) ([]domain.Order, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// Update merges the patch onto the order.
func (s *Service) Update(ctx context.Context, id int32, patch domain.OrderPatch) (domain.Order, error) {
	return s.repo.Update(ctx, id, patch)
}

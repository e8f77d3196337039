// Package cryptoservice manages business logic layer of cryptocurrencies.
package cryptoservice

import (
	"context"

	"github.com/go-petr/coin-wallet/internal/domain"
)

// Repo provides data access layer interface needed by cryptocurrency service layer.
type Repo interface {
	Create(ctx context.Context, arg domain.CreateCryptocurrencyParams) (domain.Cryptocurrency, error)
	Get(ctx context.Context, id int32) (domain.Cryptocurrency, error)
	GetBySymbol(ctx context.Context, symbol string) (domain.Cryptocurrency, error)
	List(ctx context.Context) ([]domain.Cryptocurrency, error)
	Update(ctx context.Context, id int32, patch domain.CryptocurrencyPatch) (domain.Cryptocurrency, error)
}

// Service facilitates cryptocurrency service layer logic.
type Service struct {
	repo Repo
}

// New returns cryptocurrency service.
func New(cr Repo) *Service {
	return &Service{repo: cr}
}

// Create lists a cryptocurrency.
func (s *Service) Create(ctx context.Context, arg domain.CreateCryptocurrencyParams) (domain.Cryptocurrency, error) {
	return s.repo.Create(ctx, arg)
}

// Get returns the cryptocurrency with the given id.
func (s *Service) Get(ctx context.Context, id int32) (domain.Cryptocurrency, error) {
	return s.repo.Get(ctx, id)
}

// GetBySymbol returns the cryptocurrency with the given ticker symbol.
func (s *Service) GetBySymbol(ctx context.Context, symbol string) (domain.Cryptocurrency, error) {
	return s.repo.GetBySymbol(ctx, symbol)
}

// List returns all cryptocurrencies.
func (s *Service) List(ctx context.Context) ([]domain.Cryptocurrency, error) {
	return s.repo.List(ctx)
}

// Update merges the patch onto the cryptocurrency.
func (s *Service) Update(ctx context.Context, id int32, patch domain.CryptocurrencyPatch) (domain.Cryptocurrency, error) {
	return s.repo.Update(ctx, id, patch)
}

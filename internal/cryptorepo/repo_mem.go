// Package cryptorepo manages repository layer of cryptocurrencies.
package cryptorepo

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/internal/memdb"
	"github.com/go-petr/coin-wallet/pkg/metrics"
)

// RepoMem facilitates cryptocurrency repository layer logic.
type RepoMem struct {
	cryptos *memdb.Table[domain.Cryptocurrency]
}

// NewRepoMem returns cryptocurrency RepoMem.
func NewRepoMem(db *memdb.DB) *RepoMem {
	return &RepoMem{
		cryptos: db.Cryptocurrencies,
	}
}

// Create lists a new cryptocurrency and then returns it.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateCryptocurrencyParams) (domain.Cryptocurrency, error) {
	l := zerolog.Ctx(ctx)

	unique := func(existing domain.Cryptocurrency) error {
		if existing.Symbol == arg.Symbol {
			return domain.ErrSymbolAlreadyExists
		}
		return nil
	}

	c, err := r.cryptos.Insert(unique, func(id int32) domain.Cryptocurrency {
		return domain.Cryptocurrency{
			ID:        id,
			Symbol:    arg.Symbol,
			Name:      arg.Name,
			Icon:      arg.Icon,
			Price:     arg.Price,
			Change24h: arg.Change24h,
			MarketCap: arg.MarketCap,
			UpdatedAt: time.Now().UTC(),
		}
	})
	if err != nil {
		l.Info().Err(err).Str("symbol", arg.Symbol).Send()
		return c, err
	}

	metrics.EntityCreated(metrics.EntityCryptocurrency)

	return c, nil
}

// Get returns the cryptocurrency with the given id.
func (r *RepoMem) Get(ctx context.Context, id int32) (domain.Cryptocurrency, error) {
	c, ok := r.cryptos.Get(id)
	if !ok {
		return c, domain.ErrCryptocurrencyNotFound
	}

	return c, nil
}

// GetBySymbol returns the cryptocurrency with the given ticker symbol.
func (r *RepoMem) GetBySymbol(ctx context.Context, symbol string) (domain.Cryptocurrency, error) {
	c, ok := r.cryptos.Find(func(c domain.Cryptocurrency) bool { return c.Symbol == symbol })
	if !ok {
		return c, domain.ErrCryptocurrencyNotFound
	}

	return c, nil
}

// List returns all cryptocurrencies in listing order.
func (r *RepoMem) List(ctx context.Context) ([]domain.Cryptocurrency, error) {
	return r.cryptos.List(), nil
}

// Update merges the patch onto the cryptocurrency and refreshes its UpdatedAt.
func (r *RepoMem) Update(ctx context.Context, id int32, patch domain.CryptocurrencyPatch) (domain.Cryptocurrency, error) {
	c, ok, _ := r.cryptos.Update(id, func(c *domain.Cryptocurrency) {
		patch.Apply(c)
		c.UpdatedAt = time.Now().UTC()
	}, nil)
	if !ok {
		return c, domain.ErrCryptocurrencyNotFound
	}

	return c, nil
}

package domain

import (
	"errors"
	"time"
)

var (
	// ErrCryptocurrencyNotFound indicates that the cryptocurrency is not found.
	ErrCryptocurrencyNotFound = errors.New("cryptocurrency not found")
	// ErrSymbolAlreadyExists indicates that a cryptocurrency with the given symbol already exists.
	ErrSymbolAlreadyExists = errors.New("symbol already exists")
)

// Cryptocurrency holds market data of a listed coin.
type Cryptocurrency struct {
	ID        int32     `json:"id"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Icon      *string   `json:"icon"`
	Price     string    `json:"price"`
	Change24h string    `json:"change24h"`
	MarketCap *string   `json:"marketCap"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a copy of c that shares no memory with it.
func (c Cryptocurrency) Clone() Cryptocurrency {
	c.Icon = cloneString(c.Icon)
	c.MarketCap = cloneString(c.MarketCap)
	return c
}

// CreateCryptocurrencyParams is the input data to list a cryptocurrency.
type CreateCryptocurrencyParams struct {
	Symbol    string
	Name      string
	Icon      *string
	Price     string
	Change24h string
	MarketCap *string
}

// CryptocurrencyPatch holds the cryptocurrency fields to overwrite.
type CryptocurrencyPatch struct {
	Name      *string
	Icon      *string
	Price     *string
	Change24h *string
	MarketCap *string
}

// Apply merges p onto c. UpdatedAt is stamped by the repository.
func (p CryptocurrencyPatch) Apply(c *Cryptocurrency) {
	setString(&c.Name, p.Name)
	setString(&c.Price, p.Price)
	setString(&c.Change24h, p.Change24h)

	if p.Icon != nil {
		c.Icon = cloneString(p.Icon)
	}

	if p.MarketCap != nil {
		c.MarketCap = cloneString(p.MarketCap)
	}
}

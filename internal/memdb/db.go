package memdb

import "github.com/go-petr/coin-wallet/internal/domain"

// DB holds every collection of the wallet. It is created once at start-up
// and handed to the repositories.
type DB struct {
	Users            *Table[domain.User]
	Cryptocurrencies *Table[domain.Cryptocurrency]
	UserAssets       *Table[domain.UserAsset]
	Transactions     *Table[domain.Transaction]
	Orders           *Table[domain.Order]
}

// New returns an empty DB.
func New() *DB {
	return &DB{
		Users:            NewTable[domain.User](),
		Cryptocurrencies: NewTable[domain.Cryptocurrency](),
		UserAssets:       NewTable[domain.UserAsset](),
		Transactions:     NewTable[domain.Transaction](),
		Orders:           NewTable[domain.Order](),
	}
}

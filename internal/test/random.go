package test

import (
	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/pkg/randompkg"
)

// RandomCryptocurrencyParams returns the listing data of a random cryptocurrency.
func RandomCryptocurrencyParams() domain.CreateCryptocurrencyParams {
	marketCap := randompkg.MoneyAmountBetween(1e6, 1e9)

	return domain.CreateCryptocurrencyParams{
		Symbol:    randompkg.Symbol(),
		Name:      randompkg.String(8),
		Price:     randompkg.MoneyAmountBetween(0.01, 50_000),
		Change24h: randompkg.MoneyAmountBetween(-15, 15),
		MarketCap: &marketCap,
	}
}

// RandomTransactionParams returns a random pending transaction of the given user.
func RandomTransactionParams(userID, cryptoID int32) domain.CreateTransactionParams {
	price := randompkg.MoneyAmountBetween(1, 50_000)

	return domain.CreateTransactionParams{
		UserID:   userID,
		Type:     randompkg.Pick(domain.TransactionBuy, domain.TransactionSell, domain.TransactionReceive),
		CryptoID: cryptoID,
		Amount:   randompkg.MoneyAmountBetween(0.01, 10),
		Price:    &price,
		Status:   domain.TransactionPending,
	}
}

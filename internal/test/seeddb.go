// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/go-petr/coin-wallet/internal/assetrepo"
	"github.com/go-petr/coin-wallet/internal/cryptorepo"
	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/internal/memdb"
	"github.com/go-petr/coin-wallet/internal/orderrepo"
	"github.com/go-petr/coin-wallet/internal/transactionrepo"
	"github.com/go-petr/coin-wallet/internal/userrepo"
	"github.com/go-petr/coin-wallet/pkg/passpkg"
	"github.com/go-petr/coin-wallet/pkg/randompkg"
)

// SeedUser creates random User in the store.
func SeedUser(t *testing.T, db *memdb.DB) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(32))
	if err != nil {
		t.Fatalf("passpkg.Hash(randompkg.String(32)) returned error: %v", err)
	}

	arg := domain.CreateUserParams{
		Username:         randompkg.Username(),
		HashedPassword:   hashedPassword,
		Email:            randompkg.Email(),
		FirstName:        randompkg.String(6),
		LastName:         randompkg.String(8),
		TotalBalance:     randompkg.MoneyAmountBetween(1000, 10_000),
		AvailableBalance: randompkg.MoneyAmountBetween(100, 1000),
	}

	user, err := userrepo.NewRepoMem(db).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("userRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return user
}

// SeedCryptocurrency lists a random cryptocurrency in the store.
func SeedCryptocurrency(t *testing.T, db *memdb.DB) domain.Cryptocurrency {
	t.Helper()

	arg := RandomCryptocurrencyParams()

	crypto, err := cryptorepo.NewRepoMem(db).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("cryptoRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return crypto
}

// SeedAsset creates an asset of the user in the given cryptocurrency.
func SeedAsset(t *testing.T, db *memdb.DB, userID, cryptoID int32, balance string) domain.UserAsset {
	t.Helper()

	arg := domain.CreateUserAssetParams{
		UserID:        userID,
		CryptoID:      cryptoID,
		Balance:       balance,
		LockedBalance: "0",
	}

	asset, err := assetrepo.NewRepoMem(db).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("assetRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return asset
}

// SeedTransactions creates count random transactions of the user.
func SeedTransactions(t *testing.T, db *memdb.DB, count, userID, cryptoID int32) []domain.Transaction {
	t.Helper()

	repo := transactionrepo.NewRepoMem(db)
	txs := make([]domain.Transaction, count)

	for i := range txs {
		arg := RandomTransactionParams(userID, cryptoID)

		tx, err := repo.Create(context.Background(), arg)
		if err != nil {
			t.Fatalf("transactionRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
		}

		txs[i] = tx
	}

	return txs
}

// SeedOrder places a pending buy order of the user.
func SeedOrder(t *testing.T, db *memdb.DB, userID, fromCryptoID, toCryptoID int32) domain.Order {
	t.Helper()

	arg := domain.CreateOrderParams{
		UserID:       userID,
		Type:         domain.OrderBuy,
		FromCryptoID: fromCryptoID,
		ToCryptoID:   toCryptoID,
		Amount:       randompkg.MoneyAmountBetween(0.01, 5),
		Price:        randompkg.MoneyAmountBetween(1, 50_000),
		Status:       domain.OrderPending,
	}

	order, err := orderrepo.NewRepoMem(db).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("orderRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return order
}

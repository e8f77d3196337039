package assetservice

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/coin-wallet/internal/assetrepo"
	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/internal/memdb"
)

func TestCreate(t *testing.T) {
	db := memdb.New()
	service := New(assetrepo.NewRepoMem(db))

	arg := domain.CreateUserAssetParams{UserID: 1, CryptoID: 2, Balance: "1.25"}

	asset, err := service.Create(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, domain.UserAsset{ID: 1, UserID: 1, CryptoID: 2, Balance: "1.25", LockedBalance: "0"}, asset)

	_, err = service.Create(context.Background(), arg)
	require.ErrorIs(t, err, domain.ErrAssetAlreadyExists)
	require.Equal(t, 1, db.UserAssets.Len())

	other, err := service.Create(context.Background(), domain.CreateUserAssetParams{
		UserID:        1,
		CryptoID:      3,
		Balance:       "2",
		LockedBalance: "0.5",
	})
	require.NoError(t, err)
	require.Equal(t, "0.5", other.LockedBalance)

	assets, err := service.ListByOwner(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []domain.UserAsset{asset, other}, assets)
}

func TestCreateConcurrentSamePair(t *testing.T) {
	const workers = 64

	for round := 0; round < 200; round++ {
		db := memdb.New()
		service := New(assetrepo.NewRepoMem(db))
		arg := domain.CreateUserAssetParams{UserID: 1, CryptoID: 1, Balance: "1"}

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			created int
		)

		start := make(chan struct{})

		for i := 0; i < workers; i++ {
			wg.Add(1)

			go func() {
				defer wg.Done()
				<-start

				_, err := service.Create(context.Background(), arg)

				mu.Lock()
				defer mu.Unlock()

				switch err {
				case nil:
					created++
				case domain.ErrAssetAlreadyExists:
				default:
					t.Errorf("service.Create(%+v) returned unexpected error: %v", arg, err)
				}
			}()
		}

		close(start)
		wg.Wait()

		require.Equal(t, 1, created, "round %d", round)
		require.Equal(t, 1, db.UserAssets.Len(), "round %d", round)
	}
}

func TestGetAndUpdate(t *testing.T) {
	service := New(assetrepo.NewRepoMem(memdb.New()))

	asset, err := service.Create(context.Background(), domain.CreateUserAssetParams{UserID: 1, CryptoID: 1, Balance: "3"})
	require.NoError(t, err)

	balance := "4"

	updated, err := service.Update(context.Background(), asset.ID, domain.UserAssetPatch{Balance: &balance})
	require.NoError(t, err)

	got, err := service.Get(context.Background(), asset.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)
	require.Equal(t, balance, got.Balance)
	require.Equal(t, asset.LockedBalance, got.LockedBalance)
}

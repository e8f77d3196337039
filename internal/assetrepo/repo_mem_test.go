package assetrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/internal/memdb"
	"github.com/go-petr/coin-wallet/pkg/randompkg"
)

func createRandomAsset(t *testing.T, repo *RepoMem, userID, cryptoID int32) domain.UserAsset {
	t.Helper()

	arg := domain.CreateUserAssetParams{
		UserID:        userID,
		CryptoID:      cryptoID,
		Balance:       randompkg.MoneyAmountBetween(1, 100),
		LockedBalance: "0",
	}

	a, err := repo.Create(context.Background(), arg)
	require.NoError(t, err)

	require.NotZero(t, a.ID)
	require.Equal(t, arg.UserID, a.UserID)
	require.Equal(t, arg.CryptoID, a.CryptoID)
	require.Equal(t, arg.Balance, a.Balance)
	require.Equal(t, arg.LockedBalance, a.LockedBalance)

	return a
}

func TestCreateAndGet(t *testing.T) {
	repo := NewRepoMem(memdb.New())
	a := createRandomAsset(t, repo, 1, 1)

	got, err := repo.Get(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, a, got)

	_, err = repo.Get(context.Background(), a.ID+1)
	require.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestCreateRejectsDuplicatePair(t *testing.T) {
	db := memdb.New()
	repo := NewRepoMem(db)
	createRandomAsset(t, repo, 1, 2)

	_, err := repo.Create(context.Background(), domain.CreateUserAssetParams{
		UserID:        1,
		CryptoID:      2,
		Balance:       "1",
		LockedBalance: "0",
	})
	require.ErrorIs(t, err, domain.ErrAssetAlreadyExists)
	require.Equal(t, 1, db.UserAssets.Len())

	createRandomAsset(t, repo, 2, 2)
	require.Equal(t, 2, db.UserAssets.Len())
}

func TestListByOwner(t *testing.T) {
	repo := NewRepoMem(memdb.New())

	var want []domain.UserAsset

	for cryptoID := int32(1); cryptoID <= 4; cryptoID++ {
		want = append(want, createRandomAsset(t, repo, 1, cryptoID))
		createRandomAsset(t, repo, 2, cryptoID)
	}

	got, err := repo.ListByOwner(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = repo.ListByOwner(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestUpdate(t *testing.T) {
	repo := NewRepoMem(memdb.New())
	a := createRandomAsset(t, repo, 1, 1)

	locked := "0.5"

	got, err := repo.Update(context.Background(), a.ID, domain.UserAssetPatch{LockedBalance: &locked})
	require.NoError(t, err)

	want := a
	want.LockedBalance = locked
	require.Equal(t, want, got)

	_, err = repo.Update(context.Background(), a.ID+1, domain.UserAssetPatch{LockedBalance: &locked})
	require.ErrorIs(t, err, domain.ErrAssetNotFound)
}

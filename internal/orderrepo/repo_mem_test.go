package orderrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/internal/memdb"
	"github.com/go-petr/coin-wallet/pkg/randompkg"
)

func createRandomOrder(t *testing.T, repo *RepoMem, userID int32) domain.Order {
	t.Helper()

	arg := domain.CreateOrderParams{
		UserID:       userID,
		Type:         randompkg.Pick(domain.OrderBuy, domain.OrderSell),
		FromCryptoID: 1,
		ToCryptoID:   2,
		Amount:       randompkg.MoneyAmountBetween(0.1, 5),
		Price:        randompkg.MoneyAmountBetween(100, 50_000),
		Status:       domain.OrderPending,
	}

	o, err := repo.Create(context.Background(), arg)
	require.NoError(t, err)

	require.NotZero(t, o.ID)
	require.Equal(t, arg.UserID, o.UserID)
	require.Equal(t, arg.Type, o.Type)
	require.Equal(t, arg.FromCryptoID, o.FromCryptoID)
	require.Equal(t, arg.ToCryptoID, o.ToCryptoID)
	require.Equal(t, arg.Amount, o.Amount)
	require.Equal(t, arg.Price, o.Price)
	require.Equal(t, arg.Status, o.Status)
	require.NotZero(t, o.CreatedAt)

	return o
}

func TestCreateAndGet(t *testing.T) {
	repo := NewRepoMem(memdb.New())
	o := createRandomOrder(t, repo, 1)

	got, err := repo.Get(context.Background(), o.ID)
	require.NoError(t, err)
	require.Equal(t, o, got)

	_, err = repo.Get(context.Background(), o.ID+1)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestListByOwner(t *testing.T) {
	repo := NewRepoMem(memdb.New())

	var want []domain.Order

	for i := 0; i < 3; i++ {
		want = append(want, createRandomOrder(t, repo, 5))
		createRandomOrder(t, repo, 6)
	}

	got, err := repo.ListByOwner(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestUpdate(t *testing.T) {
	db := memdb.New()
	repo := NewRepoMem(db)
	o := createRandomOrder(t, repo, 1)

	status := domain.OrderCancelled

	got, err := repo.Update(context.Background(), o.ID, domain.OrderPatch{Status: &status})
	require.NoError(t, err)

	want := o
	want.Status = status
	require.Equal(t, want, got)

	_, err = repo.Update(context.Background(), 42, domain.OrderPatch{Status: &status})
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
	require.Equal(t, 1, db.Orders.Len())
}

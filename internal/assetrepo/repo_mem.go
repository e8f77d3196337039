// Package assetrepo manages repository layer of user assets.
package assetrepo

import (
	"context"

	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/internal/memdb"
	"github.com/go-petr/coin-wallet/pkg/metrics"
)

// RepoMem facilitates user asset repository layer logic.
type RepoMem struct {
	assets *memdb.Table[domain.UserAsset]
}

// NewRepoMem returns user asset RepoMem.
func NewRepoMem(db *memdb.DB) *RepoMem {
	return &RepoMem{
		assets: db.UserAssets,
	}
}

func uniquePair(userID, cryptoID int32) func(domain.UserAsset) error {
	return func(existing domain.UserAsset) error {
		if existing.UserID == userID && existing.CryptoID == cryptoID {
			return domain.ErrAssetAlreadyExists
		}

		return nil
	}
}

// Create creates the asset and then returns it.
// A user holds at most one asset per cryptocurrency.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateUserAssetParams) (domain.UserAsset, error) {
	a, err := r.assets.Insert(uniquePair(arg.UserID, arg.CryptoID), func(id int32) domain.UserAsset {
		return domain.UserAsset{
			ID:            id,
			UserID:        arg.UserID,
			CryptoID:      arg.CryptoID,
			Balance:       arg.Balance,
			LockedBalance: arg.LockedBalance,
		}
	})
	if err != nil {
		return a, err
	}

	metrics.EntityCreated(metrics.EntityUserAsset)

	return a, nil
}

// Get returns the asset with the given id.
func (r *RepoMem) Get(ctx context.Context, id int32) (domain.UserAsset, error) {
	a, ok := r.assets.Get(id)
	if !ok {
		return a, domain.ErrAssetNotFound
	}

	return a, nil
}

// ListByOwner returns the assets of the user in insertion order.
func (r *RepoMem) ListByOwner(ctx context.Context, userID int32) ([]domain.UserAsset, error) {
	return r.assets.Filter(func(a domain.UserAsset) bool { return a.UserID == userID }), nil
}

// Update merges the patch onto the asset with the given id.
func (r *RepoMem) Update(ctx context.Context, id int32, patch domain.UserAssetPatch) (domain.UserAsset, error) {
	a, ok, _ := r.assets.Update(id, patch.Apply, nil)
	if !ok {
		return a, domain.ErrAssetNotFound
	}

	return a, nil
}

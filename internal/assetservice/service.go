// Package assetservice manages business logic layer of user assets.
package assetservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/coin-wallet/internal/domain"
)

// Repo provides data access layer interface needed by asset service layer.
type Repo interface {
	Create(ctx context.Context, arg domain.CreateUserAssetParams) (domain.UserAsset, error)
	Get(ctx context.Context, id int32) (domain.UserAsset, error)
	ListByOwner(ctx context.Context, userID int32) ([]domain.UserAsset, error)
	Update(ctx context.Context, id int32, patch domain.UserAssetPatch) (domain.UserAsset, error)
}

// Service facilitates asset service layer logic.
type Service struct {
	repo Repo
}

// New returns asset service.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create creates the user asset unless the user already holds the cryptocurrency.
func (s *Service) Create(ctx context.Context, arg domain.CreateUserAssetParams) (domain.UserAsset, error) {
	l := zerolog.Ctx(ctx)

	if arg.LockedBalance == "" {
		arg.LockedBalance = "0"
	}

	asset, err := s.repo.Create(ctx, arg)
	if err == domain.ErrAssetAlreadyExists {
		l.Info().Int32("user_id", arg.UserID).Int32("crypto_id", arg.CryptoID).Msg("asset already exists")
	}

	return asset, err
}

// Get returns the asset with the given id.
func (s *Service) Get(ctx context.Context, id int32) (domain.UserAsset, error) {
	return s.repo.Get(ctx, id)
}

// ListByOwner returns the assets of the user.
func (s *Service) ListByOwner(ctx context.Context, userID int32) ([]domain.UserAsset, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// Update merges the patch onto the asset.
func (s *Service) Update(ctx context.Context, id int32, patch domain.UserAssetPatch) (domain.UserAsset, error) {
	return s.repo.Update(ctx, id, patch)
}

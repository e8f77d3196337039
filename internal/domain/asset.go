package domain

import "errors"

var (
	// ErrAssetNotFound indicates that the user asset is not found.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrAssetAlreadyExists indicates that the user already holds an asset of the cryptocurrency.
	ErrAssetAlreadyExists = errors.New("asset already exists")
)

// UserAsset holds a user balance for one cryptocurrency.
type UserAsset struct {
	ID            int32  `json:"id"`
	UserID        int32  `json:"userId"`
	CryptoID      int32  `json:"cryptoId"`
	Balance       string `json:"balance"`
	LockedBalance string `json:"lockedBalance"`
}

// Clone returns a copy of a.
func (a UserAsset) Clone() UserAsset {
	return a
}

// CreateUserAssetParams is the input data to create a user asset.
type CreateUserAssetParams struct {
	UserID        int32
	CryptoID      int32
	Balance       string
	LockedBalance string
}

// UserAssetPatch holds the asset fields to overwrite.
type UserAssetPatch struct {
	Balance       *string
	LockedBalance *string
}

// Apply merges p onto a.
func (p UserAssetPatch) Apply(a *UserAsset) {
	setString(&a.Balance, p.Balance)
	setString(&a.LockedBalance, p.LockedBalance)
}

// Package userservice manages business logic layer of users.
package userservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/pkg/errorspkg"
	"github.com/go-petr/coin-wallet/pkg/passpkg"
)

// Repo provides data access layer interface needed by user service layer.
type Repo interface {
	Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error)
	Get(ctx context.Context, id int32) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	Update(ctx context.Context, id int32, patch domain.UserPatch) (domain.User, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo Repo
}

// New return user service struct to manage user bussines logic.
func New(ur Repo) *Service {
	return &Service{
		repo: ur,
	}
}

func orZero(balance string) string {
	if balance == "" {
		return "0"
	}

	return balance
}

// Create hashes the password, then creates and returns the user.
func (s *Service) Create(ctx context.Context, in domain.CreateUserInput) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	hashedPassword, err := passpkg.Hash(in.Password)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.User{}, errorspkg.ErrInternal
	}

	arg := domain.CreateUserParams{
		Username:         in.Username,
		HashedPassword:   hashedPassword,
		Email:            in.Email,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Avatar:           in.Avatar,
		TotalBalance:     orZero(in.TotalBalance),
		AvailableBalance: orZero(in.AvailableBalance),
	}

	return s.repo.Create(ctx, arg)
}

// Get returns the user with the given id.
func (s *Service) Get(ctx context.Context, id int32) (domain.User, error) {
	return s.repo.Get(ctx, id)
}

// GetByUsername returns the user with the given username.
func (s *Service) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// Update merges the patch onto the user.
func (s *Service) Update(ctx context.Context, id int32, patch domain.UserPatch) (domain.User, error) {
	return s.repo.Update(ctx, id, patch)
}

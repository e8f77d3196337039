// Package userrepo manages repository layer of users.
package userrepo

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/internal/memdb"
	"github.com/go-petr/coin-wallet/pkg/metrics"
)

// RepoMem facilitates user repository layer logic.
type RepoMem struct {
	users *memdb.Table[domain.User]
}

// NewRepoMem returns user RepoMem.
func NewRepoMem(db *memdb.DB) *RepoMem {
	return &RepoMem{
		users: db.Users,
	}
}

func uniqueUser(username, email string) func(domain.User) error {
	return func(existing domain.User) error {
		switch {
		case existing.Username == username:
			return domain.ErrUsernameAlreadyExists
		case existing.Email == email:
			return domain.ErrEmailAlreadyExists
		}

		return nil
	}
}

// Create creates the user and then returns it.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	u, err := r.users.Insert(uniqueUser(arg.Username, arg.Email), func(id int32) domain.User {
		return domain.User{
			ID:               id,
			Username:         arg.Username,
			HashedPassword:   arg.HashedPassword,
			Email:            arg.Email,
			FirstName:        arg.FirstName,
			LastName:         arg.LastName,
			Avatar:           arg.Avatar,
			TotalBalance:     arg.TotalBalance,
			AvailableBalance: arg.AvailableBalance,
			CreatedAt:        time.Now().UTC(),
		}
	})
	if err != nil {
		l.Info().Err(err).Str("username", arg.Username).Send()
		return u, err
	}

	metrics.EntityCreated(metrics.EntityUser)

	return u, nil
}

// Get returns the user with the given id.
func (r *RepoMem) Get(ctx context.Context, id int32) (domain.User, error) {
	u, ok := r.users.Get(id)
	if !ok {
		return u, domain.ErrUserNotFound
	}

	return u, nil
}

// GetByUsername returns the user with the given username.
func (r *RepoMem) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	u, ok := r.users.Find(func(u domain.User) bool { return u.Username == username })
	if !ok {
		return u, domain.ErrUserNotFound
	}

	return u, nil
}

// Update merges the patch onto the user with the given id and returns the result.
func (r *RepoMem) Update(ctx context.Context, id int32, patch domain.UserPatch) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	u, ok, err := r.users.Update(id, patch.Apply, func(updated, other domain.User) error {
		if updated.Email == other.Email {
			return domain.ErrEmailAlreadyExists
		}
		return nil
	})

	switch {
	case !ok:
		return u, domain.ErrUserNotFound
	case err != nil:
		l.Info().Err(err).Int32("id", id).Send()
		return u, err
	}

	return u, nil
}

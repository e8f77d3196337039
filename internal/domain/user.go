// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrUsernameAlreadyExists indicates the the user with the given username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")
	// ErrEmailAlreadyExists indicates the the user with the given email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrUserNotFound indicates the the user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// User holds wallet owner data. The password hash never leaves the server.
type User struct {
	ID               int32     `json:"id"`
	Username         string    `json:"username"`
	HashedPassword   string    `json:"-"`
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Avatar           *string   `json:"avatar"`
	TotalBalance     string    `json:"totalBalance"`
	AvailableBalance string    `json:"availableBalance"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Clone returns a copy of u that shares no memory with it.
func (u User) Clone() User {
	u.Avatar = cloneString(u.Avatar)
	return u
}

// CreateUserParams is the input data to create a user.
type CreateUserParams struct {
	Username         string
	HashedPassword   string
	Email            string
	FirstName        string
	LastName         string
	Avatar           *string
	TotalBalance     string
	AvailableBalance string
}

// UserPatch holds the user fields to overwrite, nil fields are kept.
type UserPatch struct {
	Email            *string
	FirstName        *string
	LastName         *string
	Avatar           *string
	TotalBalance     *string
	AvailableBalance *string
}

// Apply merges p onto u.
func (p UserPatch) Apply(u *User) {
	setString(&u.Email, p.Email)
	setString(&u.FirstName, p.FirstName)
	setString(&u.LastName, p.LastName)
	setString(&u.TotalBalance, p.TotalBalance)
	setString(&u.AvailableBalance, p.AvailableBalance)

	if p.Avatar != nil {
		u.Avatar = cloneString(p.Avatar)
	}
}

// CreateUserInput is the sign-up data of a user before password hashing.
type CreateUserInput struct {
	Username         string
	Password         string
	Email            string
	FirstName        string
	LastName         string
	Avatar           *string
	TotalBalance     string
	AvailableBalance string
}

// Package user implements the account workflows: registration, login,
// company assignment, and profile updates. Each workflow is a linear chain
// of single-responsibility steps with short-circuit-on-failure semantics;
// the interpreter continuations are exported so tests can drive them with
// hand-built rows, without real storage.
package user

import (
	"context"
	"time"
)

type User struct {
	ID           int64
	Email        string
	Name         string
	Surname      string
	PasswordHash string
	CompanyID    *int64
	CreatedAt    time.Time
}

// Session is the login result: the authenticated user plus a signed token.
type Session struct {
	User  User
	Token string
}

// Repository is the persistence contract; implementations return a nil user
// (not an error) when nothing matches.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) (User, error)
}

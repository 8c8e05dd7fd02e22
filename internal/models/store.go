package models

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by stores when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when an insert trips the unique email index.
var ErrDuplicateEmail = errors.New("email already registered")

// UserStore is the persistence surface the handlers and middleware depend on.
type UserStore interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateProfilePic(ctx context.Context, id uuid.UUID, url string) (*User, error)
	ListOthers(ctx context.Context, excludeID uuid.UUID) ([]User, error)
}

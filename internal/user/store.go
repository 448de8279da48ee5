package user

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means no record exists for the given email.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail means the storage-level uniqueness constraint
	// rejected the insert. The check and the insert are one atomic unit;
	// callers must not pre-check existence themselves.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store is the credential store contract. Append-only for current scope;
// nothing updates or deletes user records.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, u NewUser) (userID string, err error)
}

package credentials

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"shareride/internal/auth"
	"shareride/internal/user"
)

type Service struct {
	store user.Store

	// minPasswordLength is a policy hook; zero disables the check.
	minPasswordLength int
}

func NewService(store user.Store, minPasswordLength int) *Service {
	return &Service{
		store:             store,
		minPasswordLength: minPasswordLength,
	}
}

// RegisterInput carries the raw form fields. Names and email are trimmed
// here; passwords are taken as submitted.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Gender          string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput carries the raw login form fields.
type LoginInput struct {
	Email    string
	Password string
}

// Register validates the input, hashes the password and stores the new user.
// Check order is fixed: required fields, password mismatch, email format,
// password policy, then the insert. Uniqueness is enforced by the store;
// a duplicate surfaces as ErrEmailTaken. No session is created on success.
func (s *Service) Register(ctx context.Context, in RegisterInput) (string, error) {

	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	email := strings.TrimSpace(in.Email)

	if firstName == "" || lastName == "" || email == "" || in.Password == "" {
		return "", ErrFieldsMissing
	}

	if in.Password != in.ConfirmPassword {
		return "", ErrPasswordMismatch
	}

	if !validEmail(email) {
		return "", ErrInvalidEmail
	}

	if s.minPasswordLength > 0 && len(in.Password) < s.minPasswordLength {
		return "", ErrPasswordTooShort
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	userID, err := s.store.Insert(ctx, user.NewUser{
		FirstName:    firstName,
		LastName:     lastName,
		Gender:       in.Gender,
		Email:        email,
		PasswordHash: hash,
	})

	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	return userID, nil
}

// Authenticate checks the submitted credentials and returns the identity for
// session creation. Unknown email and wrong password both come back as
// ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, in LoginInput) (*auth.Identity, error) {

	email := strings.TrimSpace(in.Email)

	if email == "" || in.Password == "" {
		return nil, ErrFieldsMissing
	}

	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			// hide whether the account exists
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("credentials: lookup: %w", err)
	}

	if err := VerifyPassword(u.PasswordHash, in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &auth.Identity{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}, nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject display-name forms like `Jean <jean@example.com>`.
	return addr.Address == email
}

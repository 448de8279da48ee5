package credentials

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareride/internal/user"
)

func validInput() RegisterInput {
	return RegisterInput{
		FirstName:       "Jean",
		LastName:        "Uwimana",
		Gender:          user.GenderMale,
		Email:           "jean@example.com",
		Password:        "Secret123",
		ConfirmPassword: "Secret123",
	}
}

func TestRegisterSuccess(t *testing.T) {
	store := user.NewMemoryStore()
	svc := NewService(store, 0)

	userID, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	stored, err := store.FindByEmail(context.Background(), "jean@example.com")
	require.NoError(t, err)
	assert.Equal(t, userID, stored.ID)
	assert.Equal(t, "Jean", stored.FirstName)
	assert.Equal(t, "Uwimana", stored.LastName)
	assert.Equal(t, user.GenderMale, stored.Gender)

	assert.NotEqual(t, "Secret123", stored.PasswordHash)
	assert.NoError(t, VerifyPassword(stored.PasswordHash, "Secret123"))
}

func TestRegisterTrimsNamesAndEmail(t *testing.T) {
	store := user.NewMemoryStore()
	svc := NewService(store, 0)

	in := validInput()
	in.FirstName = "  Jean "
	in.LastName = " Uwimana  "
	in.Email = " jean@example.com "

	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	stored, err := store.FindByEmail(context.Background(), "jean@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jean", stored.FirstName)
	assert.Equal(t, "Uwimana", stored.LastName)
	assert.Equal(t, "jean@example.com", stored.Email)
}

func TestRegisterRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"missing first name", func(in *RegisterInput) { in.FirstName = "" }},
		{"missing last name", func(in *RegisterInput) { in.LastName = "" }},
		{"missing email", func(in *RegisterInput) { in.Email = "" }},
		{"missing password", func(in *RegisterInput) { in.Password = "" }},
		{"whitespace-only first name", func(in *RegisterInput) { in.FirstName = "   " }},
		{"whitespace-only email", func(in *RegisterInput) { in.Email = " \t " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := user.NewMemoryStore()
			svc := NewService(store, 0)

			in := validInput()
			tt.mutate(&in)

			_, err := svc.Register(context.Background(), in)
			assert.ErrorIs(t, err, ErrFieldsMissing)
		})
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	store := user.NewMemoryStore()
	svc := NewService(store, 0)

	in := validInput()
	in.Password = "abc"
	in.ConfirmPassword = "xyz"

	_, err := svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	// no store mutation
	_, err = store.FindByEmail(context.Background(), "jean@example.com")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestRegisterInvalidEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "jean@", "@example.com", "Jean <jean@example.com>"} {
		store := user.NewMemoryStore()
		svc := NewService(store, 0)

		in := validInput()
		in.Email = email

		_, err := svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
}

func TestRegisterCheckOrder(t *testing.T) {
	store := user.NewMemoryStore()
	svc := NewService(store, 0)

	// Required-fields check wins over everything else.
	in := validInput()
	in.FirstName = ""
	in.Email = "bad-email"
	in.ConfirmPassword = "different"

	_, err := svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrFieldsMissing)

	// Mismatch check wins over the format check.
	in = validInput()
	in.Email = "bad-email"
	in.ConfirmPassword = "different"

	_, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := user.NewMemoryStore()
	svc := NewService(store, 0)

	ctx := context.Background()
	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	before, err := store.FindByEmail(ctx, "jean@example.com")
	require.NoError(t, err)

	in := validInput()
	in.FirstName = "Someone"
	in.Password = "Other456"
	in.ConfirmPassword = "Other456"

	_, err = svc.Register(ctx, in)
	assert.ErrorIs(t, err, ErrEmailTaken)

	// prior record is unchanged
	after, err := store.FindByEmail(ctx, "jean@example.com")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRegisterPasswordPolicy(t *testing.T) {
	store := user.NewMemoryStore()

	in := validInput()
	in.Password = "abc"
	in.ConfirmPassword = "abc"

	// Policy disabled: short passwords pass, as the original form allowed.
	_, err := NewService(store, 0).Register(context.Background(), in)
	assert.NoError(t, err)

	in.Email = "other@example.com"
	_, err = NewService(store, 8).Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

type failingStore struct{}

func (failingStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Insert(ctx context.Context, nu user.NewUser) (string, error) {
	return "", errors.New("connection refused")
}

func TestRegisterStoreFailure(t *testing.T) {
	svc := NewService(failingStore{}, 0)

	_, err := svc.Register(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrRegistrationFailed)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr), "storage failures must not surface as validation errors")
}

func TestAuthenticateSuccess(t *testing.T) {
	store := user.NewMemoryStore()
	svc := NewService(store, 0)
	ctx := context.Background()

	userID, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	identity, err := svc.Authenticate(ctx, LoginInput{
		Email:    "jean@example.com",
		Password: "Secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "Jean", identity.FirstName)
	assert.Equal(t, "Uwimana", identity.LastName)
}

func TestAuthenticateTrimsEmail(t *testing.T) {
	store := user.NewMemoryStore()
	svc := NewService(store, 0)
	ctx := context.Background()

	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, LoginInput{
		Email:    "  jean@example.com ",
		Password: "Secret123",
	})
	assert.NoError(t, err)
}

func TestAuthenticateRequiredFields(t *testing.T) {
	svc := NewService(user.NewMemoryStore(), 0)

	_, err := svc.Authenticate(context.Background(), LoginInput{Email: "", Password: "x"})
	assert.ErrorIs(t, err, ErrFieldsMissing)

	_, err = svc.Authenticate(context.Background(), LoginInput{Email: "jean@example.com", Password: ""})
	assert.ErrorIs(t, err, ErrFieldsMissing)
}

func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	store := user.NewMemoryStore()
	svc := NewService(store, 0)
	ctx := context.Background()

	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate(ctx, LoginInput{
		Email:    "jean@example.com",
		Password: "wrong",
	})
	_, unknownEmail := svc.Authenticate(ctx, LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

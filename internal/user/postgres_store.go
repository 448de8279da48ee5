package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"shareride/internal/db"
)

// SQLSTATE for unique_violation.
const pqUniqueViolation = "23505"

type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*User, error) {

	var (
		u  User
		id uuid.UUID
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, gender, email, password_hash, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email).Scan(
		&id,
		&u.FirstName,
		&u.LastName,
		&u.Gender,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user: find by email: %w", err)
	}

	u.ID = id.String()
	return &u, nil
}

func (s *PostgresStore) Insert(ctx context.Context, nu NewUser) (string, error) {

	var id uuid.UUID

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (first_name, last_name, gender, email, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		nu.FirstName,
		nu.LastName,
		nu.Gender,
		nu.Email,
		nu.PasswordHash,
	).Scan(&id)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return "", ErrDuplicateEmail
		}
		return "", fmt.Errorf("user: insert: %w", err)
	}

	return id.String(), nil
}

package session

import (
	"context"
	"time"
)

// Session is server-side proof that a user has authenticated. It carries the
// user's name denormalized for display, so the dashboard never has to hit the
// user store.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"` // absolute expiry
}

// Store defines how sessions are stored and retrieved. Only the login flow
// creates sessions; only logout (or expiry) destroys them.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

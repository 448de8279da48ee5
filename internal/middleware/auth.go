package middleware

import (
	"context"
	"net/http"
	"time"

	"shareride/internal/session"
)

// unexported, collision-proof context key
type sessionContextKeyType struct{}

var sessionKey = sessionContextKeyType{}

// SessionFromContext extracts the authenticated session from context.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok
}

// UserIDFromContext extracts the authenticated user ID from context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	s, ok := SessionFromContext(ctx)
	if !ok {
		return "", false
	}
	return s.UserID, true
}

type AuthMiddleware struct {
	Store session.Store
}

func NewAuthMiddleware(store session.Store) *AuthMiddleware {
	return &AuthMiddleware{Store: store}
}

// authenticate resolves the request's session cookie to a live session.
// It returns nil when there is no cookie, no matching record, or the
// session has passed its absolute expiry (expired records are deleted).
func (a *AuthMiddleware) authenticate(r *http.Request) *session.Session {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	sess, err := a.Store.Get(r.Context(), cookie.Value)
	if err != nil || sess == nil {
		return nil
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = a.Store.Delete(r.Context(), cookie.Value)
		return nil
	}

	return sess
}

// RequireAuth gates API routes. Requests without a live session get 401;
// the protected handler never runs.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return a.guard(next, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

// RequireLogin gates web pages. Requests without a live session are
// redirected to the login page; the protected handler never runs.
func (a *AuthMiddleware) RequireLogin(next http.Handler, loginURL string) http.Handler {
	return a.guard(next, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, loginURL, http.StatusFound)
	})
}

func (a *AuthMiddleware) guard(next http.Handler, deny http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := a.authenticate(r)
		if sess == nil {
			deny(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"shareride/internal/auth"
	"shareride/internal/auth/credentials"
	"shareride/internal/session"
)

type Handler struct {
	credentialService *credentials.Service
	sessionStore      session.Store
	sessionTTL        time.Duration
	cookieOpts        session.CookieOptions
}

func NewHandler(
	credentialService *credentials.Service,
	sessionStore session.Store,
	sessionTTL time.Duration,
	cookieOpts session.CookieOptions,
) *Handler {
	return &Handler{
		credentialService: credentialService,
		sessionStore:      sessionStore,
		sessionTTL:        sessionTTL,
		cookieOpts:        cookieOpts,
	}
}

// RegisterRoutes wires the public routes: pages, form posts and the JSON API.
// Protected routes are registered by the app behind the auth middleware.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.IndexPage)
	r.GET("/register", h.RegisterPage)
	r.POST("/register", h.Register)
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	r.POST("/api/register", h.APIRegister)
	r.POST("/api/login", h.APILogin)
}

// createSession persists a new session for the identity and sets the cookie.
// Called only after a successful credential check.
func (h *Handler) createSession(c *gin.Context, identity *auth.Identity) error {
	sessionID, err := session.GenerateID()
	if err != nil {
		return err
	}

	now := time.Now()
	sess := session.Session{
		SessionID: sessionID,
		UserID:    identity.UserID,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		CreatedAt: now,
		ExpiresAt: now.Add(h.sessionTTL),
	}

	if err := h.sessionStore.Create(c.Request.Context(), sess); err != nil {
		return err
	}

	session.SetCookie(c.Writer, sessionID, sess.ExpiresAt, h.cookieOpts)
	return nil
}

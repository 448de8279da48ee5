package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shareride/internal/session"
)

// Logout destroys the session (best-effort) and clears the cookie. It is
// idempotent: logging out without a session still redirects home.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		_ = h.sessionStore.Delete(c.Request.Context(), cookie.Value)
	}

	session.ClearCookie(c.Writer, h.cookieOpts)

	c.Redirect(http.StatusSeeOther, "/")
}

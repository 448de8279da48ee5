package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shareride/internal/middleware"
)

func (h *Handler) IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (h *Handler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// DashboardPage runs behind the session guard; the middleware has already
// attached the session before this executes.
func (h *Handler) DashboardPage(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"FirstName": sess.FirstName,
		"LastName":  sess.LastName,
	})
}

// Me returns the session identity for API clients.
func (h *Handler) Me(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":    sess.UserID,
		"first_name": sess.FirstName,
		"last_name":  sess.LastName,
	})
}

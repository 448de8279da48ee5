package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shareride/internal/auth/credentials"
	"shareride/internal/logger"
)

// Login handles the login form post. A successful check creates the session
// and redirects to the dashboard; every credential failure re-renders the
// form with the same generic message.
func (h *Handler) Login(c *gin.Context) {
	in := credentials.LoginInput{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	identity, err := h.credentialService.Authenticate(c.Request.Context(), in)

	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": loginErrorMessage(err)})
		return
	}

	if err := h.createSession(c, identity); err != nil {
		logger.Error("session creation failed", map[string]any{
			"error": err.Error(),
		})
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error": "something went wrong, please try again",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

type apiLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// APILogin is the JSON mirror of Login.
func (h *Handler) APILogin(c *gin.Context) {
	var req apiLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	identity, err := h.credentialService.Authenticate(c.Request.Context(), credentials.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})

	if err != nil {
		var verr *credentials.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
			return
		}
		// Unknown email, wrong password and storage trouble all look the
		// same from outside.
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": credentials.ErrInvalidCredentials.Error(),
		})
		return
	}

	if err := h.createSession(c, identity); err != nil {
		logger.Error("session creation failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged_in"})
}

func loginErrorMessage(err error) string {
	var verr *credentials.ValidationError
	if errors.As(err, &verr) {
		return verr.Msg
	}
	if !errors.Is(err, credentials.ErrInvalidCredentials) {
		logger.Error("login lookup failed", map[string]any{
			"error": err.Error(),
		})
	}
	return credentials.ErrInvalidCredentials.Error()
}

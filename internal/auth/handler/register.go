package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shareride/internal/auth/credentials"
	"shareride/internal/logger"
)

const registeredMessage = "Registration successful! You can now login."

// Register handles the registration form post. Validation problems re-render
// the form with the message; anything unexpected gets the generic retry text.
func (h *Handler) Register(c *gin.Context) {
	in := credentials.RegisterInput{
		FirstName:       c.PostForm("first_name"),
		LastName:        c.PostForm("last_name"),
		Gender:          c.PostForm("gender"),
		Email:           c.PostForm("email"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirm_password"),
	}

	_, err := h.credentialService.Register(c.Request.Context(), in)

	if err != nil {
		var verr *credentials.ValidationError
		if errors.As(err, &verr) {
			c.HTML(http.StatusOK, "register.html", gin.H{"Error": verr.Msg})
			return
		}

		logger.Error("registration failed", map[string]any{
			"error": err.Error(),
		})
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Error": credentials.ErrRegistrationFailed.Error(),
		})
		return
	}

	c.HTML(http.StatusOK, "register.html", gin.H{"Success": registeredMessage})
}

type apiRegisterRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Gender          string `json:"gender"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// APIRegister is the JSON mirror of Register.
func (h *Handler) APIRegister(c *gin.Context) {
	var req apiRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID, err := h.credentialService.Register(c.Request.Context(), credentials.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Gender:          req.Gender,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})

	if err != nil {
		var verr *credentials.ValidationError
		switch {
		case errors.Is(err, credentials.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": credentials.ErrEmailTaken.Msg})
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
		default:
			logger.Error("registration failed", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": credentials.ErrRegistrationFailed.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "registered",
		"user_id": userID,
	})
}

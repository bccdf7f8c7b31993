package handlers

import (
	"net/http"

	userSvc "groomer/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes signup and login.
type UserHandler struct {
	Service userSvc.UserService
}

func NewUserHandler(svc userSvc.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// SignUpHandler registers a new account.
func (h *UserHandler) SignUpHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	user, err := h.Service.SignUp(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch err {
		case userSvc.ErrMissingFields:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email, password, and name are required"})
		case userSvc.ErrEmailTaken:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SignInHandler verifies credentials and returns a bearer token.
func (h *UserHandler) SignInHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	user, token, err := h.Service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == userSvc.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "accessToken": token})
}

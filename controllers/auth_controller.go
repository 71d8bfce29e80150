package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/5hjiwoo/foodrecommend/services"
)

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ac.Users.Register(c.Request.Context(), input.Email, input.Password, input.FullName)
	if errors.Is(err, services.ErrEmailTaken) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}
	if err != nil {
		internalError(c, "Registration failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ac.Users.Authenticate(c.Request.Context(), input.Email, input.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err != nil {
		internalError(c, "Login failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// DELETE /account/
func (ac *AuthController) DeleteAccount(c *gin.Context) {
	err := ac.Users.DeleteUser(c.Request.Context(), currentUserID(c))
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		internalError(c, "Failed to delete account", err)
		return
	}
	c.Status(http.StatusNoContent)
}

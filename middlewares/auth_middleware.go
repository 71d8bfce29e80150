// middlewares/auth_middleware.go
package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/5hjiwoo/foodrecommend/models"
	"github.com/5hjiwoo/foodrecommend/utils"
)

const (
	ContextUserID = "userID"
	ContextEmail  = "email"
)

// UserLookup resolves token subjects to stored users.
type UserLookup interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthMiddleware authenticates "Authorization: Bearer <jwt>".
func AuthMiddleware(secret []byte, users UserLookup) gin.HandlerFunc {
	return authenticate(secret, users, bearerToken)
}

// WSAuthMiddleware also accepts the token as ?token=, since browser
// websocket clients cannot set headers.
func WSAuthMiddleware(secret []byte, users UserLookup) gin.HandlerFunc {
	return authenticate(secret, users, func(c *gin.Context) string {
		if tok := bearerToken(c); tok != "" {
			return tok
		}
		return c.Query("token")
	})
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

func authenticate(secret []byte, users UserLookup, token func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := token(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}
		if len(secret) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
			return
		}

		claims, err := utils.ParseJWT(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// Prefer the userId claim, fall back to the email claim
		var user *models.User
		switch {
		case claims.UserID != 0:
			user, err = users.FindByID(c.Request.Context(), claims.UserID)
		case claims.Email != "":
			user, err = users.FindByEmail(c.Request.Context(), claims.Email)
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextEmail, user.Email)
		c.Next()
	}
}

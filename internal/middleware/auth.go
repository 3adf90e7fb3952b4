package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-dev/skillbridge/internal/auth"
	"github.com/skillbridge-dev/skillbridge/internal/models"
	"github.com/skillbridge-dev/skillbridge/internal/store"
	"github.com/skillbridge-dev/skillbridge/internal/types"
	"golang.org/x/crypto/bcrypt"
)

// Auth accepts HTTP Basic credentials (username or email plus password) or a
// Bearer token from /login, and binds the resolved identity to the request
// context. Both paths fail closed with 401.
func Auth(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Error: authorization required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Error: authorization header must be Basic or Bearer"})
			return
		}

		var (
			user *models.User
			err  error
		)

		switch parts[0] {
		case "Basic":
			identifier, password, ok := ctx.Request.BasicAuth()
			if !ok {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Error: malformed basic auth header"})
				return
			}
			user, err = s.GetUserByIdentifier(identifier)
			if err == nil {
				err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
			}
			if err != nil {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Error: invalid username or password"})
				return
			}
		case "Bearer":
			var userID uint
			userID, err = auth.VerifyToken(parts[1])
			if err == nil {
				user, err = s.GetUserModel(userID)
			}
			if err != nil {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Error: invalid or expired token"})
				return
			}
		default:
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Error: authorization header must be Basic or Bearer"})
			return
		}

		ctx.Set(types.ContextUserKey, types.AuthenticatedUser{
			ID:          user.ID,
			Username:    user.Username,
			Name:        user.Name,
			Email:       user.Email,
			Permissions: user.Permissions,
		})
		ctx.Next()
	}
}

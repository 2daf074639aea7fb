package middleware

import (
	"net/http"
	"strings"

	"github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/model"
	"github.com/gin-gonic/gin"
)

const (
	claimsKey = "authClaims"
	userKey   = "user"
)

type AuthConfig struct {
	// SessionNotRequired lets unauthenticated requests through; the user
	// helpers then report an anonymous caller.
	SessionNotRequired bool
}

func Auth(userDB db.UserDatabase, secret string, config *AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorizationHeader := c.GetHeader("Authorization")
		if authorizationHeader == "" {
			if config.SessionNotRequired {
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "no authorization header",
			})
			c.Abort()
			return
		}
		if !strings.HasPrefix(authorizationHeader, "Bearer ") || len(authorizationHeader) < 8 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "incorrectly formatted authorization header",
			})
			c.Abort()
			return
		}

		claims, err := ValidateToken(authorizationHeader[7:], secret)
		if err != nil {
			if config.SessionNotRequired {
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid token",
			})
			c.Abort()
			return
		}
		c.Set(claimsKey, claims)

		user, err := userDB.GetUserById(c, claims.UserId)
		if err != nil || user == nil {
			if config.SessionNotRequired {
				return
			}
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "must have a user account",
			})
			c.Abort()
			return
		}
		c.Set(userKey, user)
	}
}

func MustGetUser(c *gin.Context) *model.User {
	user, _ := c.Get(userKey)
	return user.(*model.User)
}

// GetUserIdMaybe returns 0 for anonymous callers.
func GetUserIdMaybe(c *gin.Context) int64 {
	user, ok := c.Get(userKey)
	if !ok {
		return 0
	}
	return user.(*model.User).Id
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"golfpoi/pkg/utils"
)

// JWTAuthMiddleware rejects requests without a valid bearer token and sets
// "user_id" for the handlers. It only establishes identity; the admin
// capability is checked in the domain layer against the account record.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

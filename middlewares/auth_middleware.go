package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ahnaf-17/hangoutz-restaurant-plus/utils"
)

// A missing or bad credential is an authentication failure (401), not a
// policy decision, so it is answered here and never reaches the handlers.
func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, utils.JSONResponse{
		Status:  false,
		Message: message,
	})
	c.Abort()
}

// AuthMiddleware verifies the bearer token and places the verified
// (user_id, role) pair into the request context. Everything downstream
// trusts those two keys and never touches the credential itself.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "authorization header missing")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil || claims.UserID == 0 {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

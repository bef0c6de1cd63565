package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/Ahnaf-17/hangoutz-restaurant-plus/policy"
	"github.com/Ahnaf-17/hangoutz-restaurant-plus/utils"
)

func roleFrom(c *gin.Context) (policy.Role, bool) {
	v, exists := c.Get("role")
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return policy.ParseRole(s)
}

// RequireElevated guards routes reserved for staff and admin.
func RequireElevated() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := roleFrom(c)
		if !ok || !role.Elevated() {
			utils.RespondError(c, utils.ForbiddenError("staff or admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin guards routes reserved for admin, with no staff exception.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := roleFrom(c)
		if !ok || !policy.CanAssignRole(role) {
			utils.RespondError(c, utils.ForbiddenError("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

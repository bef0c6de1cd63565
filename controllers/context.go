package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ahnaf-17/hangoutz-restaurant-plus/policy"
)

// currentActor pulls the verified (id, role) pair the auth middleware put
// into the context. ok is false when the route was wired without auth or
// the token carried an unknown role.
func currentActor(c *gin.Context) (uint, policy.Role, bool) {
	idVal, exists := c.Get("user_id")
	if !exists {
		return 0, "", false
	}
	id, okID := idVal.(uint)

	roleVal, exists := c.Get("role")
	if !exists {
		return 0, "", false
	}
	roleStr, okRole := roleVal.(string)
	if !okID || !okRole {
		return 0, "", false
	}

	role, ok := policy.ParseRole(roleStr)
	if !ok {
		return 0, "", false
	}
	return id, role, true
}

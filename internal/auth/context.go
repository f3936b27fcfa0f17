package auth

import "github.com/gin-gonic/gin"

// GetUserID returns the authenticated user's ID, or 0 when unauthenticated.
func GetUserID(c *gin.Context) int64 {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// GetUserEmail returns the authenticated user's email or empty string.
func GetUserEmail(c *gin.Context) string {
	if v, ok := c.Get("userEmail"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserRoleID returns the authenticated user's role ID, or 0 when unknown.
func GetUserRoleID(c *gin.Context) int64 {
	if v, ok := c.Get("userRoleID"); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

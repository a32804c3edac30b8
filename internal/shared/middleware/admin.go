package middleware

import (
	"github.com/gin-gonic/gin"

	"catalog-backend/internal/shared/response"
)

// AdminMiddleware rejects callers whose token does not carry the admin role.
// It relies on AuthMiddleware having stored the role in the context.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok || role != "admin" {
			response.Forbidden(c, "admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/logger"
)

// Recovery converts a handler panic into the standard error envelope instead
// of tearing down the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", fmt.Errorf("request %s: %v", c.GetString("request_id"), r))

				response.InternalServerError(c, "internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}

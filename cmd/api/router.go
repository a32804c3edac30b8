package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/shared/middleware"
	"catalog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupBookRoutes(v1, c)
		setupComputerRoutes(v1, c)
	}

	return router
}

// Reads are public; writes require an authenticated admin.
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.GetByID)

		admin := books.Group("")
		admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
		{
			admin.POST("", c.BookHandler.Create)
			admin.PUT("/:id", c.BookHandler.Update)
			admin.DELETE("/:id", c.BookHandler.Delete)
		}
	}
}

func setupComputerRoutes(v1 *gin.RouterGroup, c *container.Container) {
	computers := v1.Group("/computers")
	{
		computers.GET("", c.ComputerHandler.List)
		computers.GET("/:id", c.ComputerHandler.GetByID)

		admin := computers.Group("")
		admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
		{
			admin.POST("", c.ComputerHandler.Create)
			admin.PUT("/:id", c.ComputerHandler.Update)
			admin.DELETE("/:id", c.ComputerHandler.Delete)
		}
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.Pool.Ping(ctx); err != nil {
			health["status"] = "degraded"
			health["database"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, health)
			return
		}

		c.JSON(http.StatusOK, health)
	}
}

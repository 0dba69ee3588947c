package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"book-catalog-backend/internal/shared/middleware"
	"book-catalog-backend/pkg/container"
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
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAdminRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupBookRoutes(v1, c)
	}

	return router
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	{
		admin.POST("/login", c.AdminHandler.Login)
	}
}

// ========================================
// AUTHOR ROUTES (all admin-only)
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	authors.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		authors.GET("", c.AuthorHandler.GetAll)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.POST("", c.AuthorHandler.Create)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
// The /books/public subtree serves the storefront without a token; the
// rest of /books is admin-only.
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("/public", c.BookHandler.GetAll)
		books.GET("/public/:id", c.BookHandler.GetByID)
	}

	protected := books.Group("")
	protected.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		protected.GET("", c.BookHandler.GetAll)
		protected.GET("/:id", c.BookHandler.GetByID)
		protected.POST("", c.BookHandler.Create)
		protected.PUT("/:id", c.BookHandler.Update)
		protected.DELETE("/:id", c.BookHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Redis only backs login throttling, so a redis outage does not
		// degrade the overall status
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		storageStatus := "ok"
		if appCtx.Storage == nil {
			storageStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Storage.HealthCheck(ctx); err != nil {
				storageStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
			"storage":  storageStatus,
		}

		c.JSON(200, health)
	}
}

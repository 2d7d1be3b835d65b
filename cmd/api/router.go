package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"book-inventory-backend/internal/shared/middleware"
	"book-inventory-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	router.GET("/allBooks", c.BookHandler.ListBooks)
	router.GET("/book/:id", c.BookHandler.GetBook)
	router.POST("/newBook", c.BookHandler.CreateBook)
	router.PUT("/bookChange/:id", c.BookHandler.UpdateBook)
	router.DELETE("/bookDelete/:id", c.BookHandler.DeleteBook)
	router.GET("/sortingBooks", c.BookHandler.FilterBooks)

	return router
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

		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		// Cache is optional; a redis outage degrades reads but the API stays up.
		cacheStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = fmt.Sprintf("error: %v", err)
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    cacheStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

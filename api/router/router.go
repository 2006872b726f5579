package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"summarly/api/handlers"
	"summarly/api/middleware"
	"summarly/config"
	"summarly/db"
	_ "summarly/docs"
	"summarly/services"
)

func New(svc *services.SummaryService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limited := middleware.RateLimit(config.GetConfig().RateLimit)

	summaries := r.Group("/summaries")
	{
		summaries.POST("", limited, handlers.CreateSummaryHandler(svc))
		summaries.POST("/feed", limited, handlers.CreateFromFeedHandler(svc))
		summaries.GET("", handlers.ListSummariesHandler(svc))
		summaries.GET("/:id", handlers.GetSummaryHandler(svc))
		summaries.PUT("/:id", limited, handlers.UpdateSummaryHandler(svc))
		summaries.DELETE("/:id", limited, handlers.DeleteSummaryHandler(svc))
	}

	return r
}

package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blog-taxonomy/api/handlers"
	"blog-taxonomy/api/middleware"
	"blog-taxonomy/config"
	_ "blog-taxonomy/docs"
	"blog-taxonomy/dto"
	"blog-taxonomy/services"
)

// Pinger is implemented by every post store driver.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is what the router needs from the configured post store.
type Store interface {
	services.PostStore
	Pinger
}

func New(store Store, cfg config.AppConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthDTO{Status: "degraded", Store: "down", Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.HealthDTO{Status: "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	props := cfg.RelatedPosts.WithDefaults()
	urls := services.NewURLBuilder(cfg.Pages, props.SlugParam())

	// v1 routes
	api := r.Group("/api/v1")
	{
		postsSvc := services.NewPostService(store, urls)
		api.GET("/posts/:slug", handlers.GetPostHandler(postsSvc, props))

		relatedSvc := services.NewRelatedPostsService(store)
		api.GET("/posts/:slug/related", handlers.RelatedPostsHandler(relatedSvc, urls, props))
		api.GET("/related/order-options", handlers.OrderOptionsHandler())
	}

	return r
}

package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"crosscast/infrastructure/realtime"
	handler "crosscast/interfaces/http"
	"crosscast/interfaces/middleware"
)

// NewRouter wires all HTTP routes. Everything under /api requires a valid
// bearer token.
func NewRouter(
	secretKey string,
	userHandler *handler.UserHandler,
	publishHandler *handler.PublishHandler,
	captionHandler *handler.CaptionHandler,
	authHandler *handler.AuthHandler,
	hub *realtime.Hub,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	router.POST("/register", userHandler.Register)
	router.POST("/login", userHandler.Login)
	// Connect requires a logged-in user (token header or ?token= for plain
	// browser navigation); the callback stays public for Google's redirect.
	router.GET("/auth/youtube", middleware.Auth(secretKey), authHandler.Connect)
	router.GET("/auth/youtube/callback", authHandler.Callback)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api", middleware.Auth(secretKey))
	{
		api.GET("/publish/platforms", publishHandler.Platforms)
		api.POST("/publish", publishHandler.Publish)
		api.GET("/publish/stream", hub.Serve)
		api.GET("/videos", publishHandler.History)
		api.POST("/ai/generate-content", captionHandler.Generate)
	}

	return router
}

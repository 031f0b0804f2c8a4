package http

import (
	"github.com/gin-gonic/gin"
	"github.com/linkme-app/linkme-backend/internal/delivery/http/handler"
	"github.com/linkme-app/linkme-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	locationHandler   *handler.LocationHandler
	nearbyHandler     *handler.NearbyHandler
	connectionHandler *handler.ConnectionHandler
	exploreHandler    *handler.ExploreHandler
	authMiddleware    *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	locationHandler *handler.LocationHandler,
	nearbyHandler *handler.NearbyHandler,
	connectionHandler *handler.ConnectionHandler,
	exploreHandler *handler.ExploreHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:       authHandler,
		profileHandler:    profileHandler,
		locationHandler:   locationHandler,
		nearbyHandler:     nearbyHandler,
		connectionHandler: connectionHandler,
		exploreHandler:    exploreHandler,
		authMiddleware:    authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/google", r.authHandler.GoogleAuth)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profiles := protected.Group("/profiles")
			{
				profiles.GET("/me", r.profileHandler.GetMyProfile)
				profiles.PUT("/me", r.profileHandler.UpsertMyProfile)
				profiles.GET("/:user_id", r.profileHandler.GetProfileByUserID)
			}

			// Location + discovery
			protected.PUT("/location/me", r.locationHandler.UpdateMyLocation)
			protected.GET("/nearby", r.nearbyHandler.GetNearby)
			protected.POST("/explore", r.exploreHandler.Explore)

			// Connection routes
			connections := protected.Group("/connections")
			{
				connections.POST("", r.connectionHandler.CreateConnection)
				connections.GET("", r.connectionHandler.ListConnections)
				connections.POST("/:id/respond", r.connectionHandler.RespondToConnection)
				connections.GET("/:id/messages", r.connectionHandler.ListMessages)
				connections.POST("/:id/messages", r.connectionHandler.SendMessage)
			}
		}
	}

	return router
}

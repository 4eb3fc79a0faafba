package http

import (
	"github.com/craftlink/craftlink-backend/internal/delivery/http/handler"
	"github.com/craftlink/craftlink-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	discoveryHandler    *handler.DiscoveryHandler
	swipeHandler        *handler.SwipeHandler
	matchHandler        *handler.MatchHandler
	messageHandler      *handler.MessageHandler
	notificationHandler *handler.NotificationHandler
	projectHandler      *handler.ProjectHandler
	authMiddleware      *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	discoveryHandler *handler.DiscoveryHandler,
	swipeHandler *handler.SwipeHandler,
	matchHandler *handler.MatchHandler,
	messageHandler *handler.MessageHandler,
	notificationHandler *handler.NotificationHandler,
	projectHandler *handler.ProjectHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		discoveryHandler:    discoveryHandler,
		swipeHandler:        swipeHandler,
		matchHandler:        matchHandler,
		messageHandler:      messageHandler,
		notificationHandler: notificationHandler,
		projectHandler:      projectHandler,
		authMiddleware:      authMiddleware,
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
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.POST("/complete-onboarding", r.profileHandler.CompleteOnboarding)
				profile.POST("/generate-tagline", r.profileHandler.GenerateTagline)
				profile.GET("/handle/:handle", r.profileHandler.GetByHandle)
				profile.POST("/block/:creator_id", r.profileHandler.Block)
				profile.DELETE("/block/:creator_id", r.profileHandler.Unblock)
			}

			// Discovery routes
			discovery := protected.Group("/discovery")
			{
				discovery.GET("/pool", r.discoveryHandler.GetPool)
				discovery.PUT("/filter", r.discoveryHandler.SetFilter)
				discovery.POST("/reload", r.discoveryHandler.Reload)
				discovery.POST("/like/:creator_id", r.discoveryHandler.Like)
				discovery.POST("/pass/:creator_id", r.discoveryHandler.Pass)
				discovery.POST("/gesture", r.discoveryHandler.Gesture)
				discovery.POST("/keyboard", r.discoveryHandler.Keyboard)
			}

			// Swipe routes
			swipe := protected.Group("/swipe")
			{
				swipe.GET("/likes-received", r.swipeHandler.GetLikesReceived)
				swipe.POST("/reset-passes", r.swipeHandler.ResetPasses)
				swipe.DELETE("/:creator_id", r.swipeHandler.DeleteSwipe)
			}

			// Match routes
			matches := protected.Group("/matches")
			{
				matches.GET("", r.matchHandler.GetMatches)
				matches.DELETE("/:match_id", r.matchHandler.Unmatch)
			}

			// Conversation routes
			conversations := protected.Group("/conversations")
			{
				conversations.POST("/:conversation_id/messages", r.messageHandler.SendMessage)
				conversations.GET("/:conversation_id/messages", r.messageHandler.ListMessages)
			}

			// Notification routes
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", r.notificationHandler.List)
				notifications.POST("/:notification_id/read", r.notificationHandler.MarkRead)
			}

			// Project routes
			projects := protected.Group("/projects")
			{
				projects.POST("", r.projectHandler.Create)
				projects.GET("", r.projectHandler.List)
				projects.GET("/:project_id", r.projectHandler.Get)
				projects.PUT("/:project_id", r.projectHandler.Update)
				projects.POST("/:project_id/apply", r.projectHandler.Apply)
				projects.GET("/:project_id/applications", r.projectHandler.ListApplications)
			}

			// Application routes
			applications := protected.Group("/applications")
			{
				applications.GET("/mine", r.projectHandler.MyApplications)
				applications.POST("/:application_id/decide", r.projectHandler.Decide)
			}
		}
	}

	return router
}

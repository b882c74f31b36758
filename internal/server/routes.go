package server

import (
	"voting-service/internal/server/handlers"
	"voting-service/internal/server/middleware"
	"voting-service/internal/ws"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	hub *ws.Hub,
	authHandler *handlers.AuthHandler,
	eventHandler *handlers.EventHandler,
	candidateHandler *handlers.CandidateHandler,
	voteHandler *handlers.VoteHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	exportHandler *handlers.ExportHandler,
	settingsHandler *handlers.SettingsHandler,
	uploadHandler *handlers.UploadHandler,
	userHandler *handlers.UserHandler,
) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check route
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		public.GET("/events", eventHandler.GetEvents)
		public.GET("/events/:event_id", eventHandler.GetEvent)
		public.GET("/events/:event_id/leaderboard", leaderboardHandler.GetPublishedLeaderboard)
		public.GET("/results", leaderboardHandler.GetResults)

		// Personalizes the response when a valid token is supplied.
		public.GET("/events/:event_id/candidates",
			middleware.OptionalJWTAuth(jwtSecret), candidateHandler.GetCandidates)

		// Live tally feed
		public.GET("/ws/events/:event_id", ws.ServeWs(hub))
	}

	// Protected routes (require JWT authentication)
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuth(jwtSecret))
	{
		protected.POST("/events/:event_id/vote", voteHandler.CastVote)
		protected.GET("/profile/votes", voteHandler.GetVotingHistory)
	}

	// Admin routes
	admin := router.Group("/api/v1")
	admin.Use(middleware.JWTAuth(jwtSecret), middleware.RequireAdmin())
	{
		admin.POST("/events", eventHandler.CreateEvent)
		admin.PUT("/events/:event_id", eventHandler.UpdateEvent)
		admin.DELETE("/events/:event_id", eventHandler.DeleteEvent)
		admin.PUT("/events/:event_id/voters", eventHandler.UpdateVoters)
		admin.POST("/events/:event_id/publish", eventHandler.PublishResults)
		admin.POST("/events/:event_id/candidates", candidateHandler.AddCandidate)
		admin.GET("/events/:event_id/candidates/all", candidateHandler.GetAllCandidates)
		admin.GET("/events/:event_id/leaderboard/live", leaderboardHandler.GetLiveLeaderboard)
		admin.GET("/events/:event_id/export", exportHandler.ExportResults)
		admin.GET("/users", userHandler.GetUsers)
		admin.PUT("/users/:user_id/role", userHandler.UpdateUserRole)
		admin.GET("/settings/vote-weights", settingsHandler.GetWeightSettings)
		admin.PUT("/settings/vote-weights", settingsHandler.UpdateWeightSettings)
		admin.POST("/uploads/images", uploadHandler.UploadImage)
	}
}

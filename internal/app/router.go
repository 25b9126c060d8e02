package app

import (
	"codefix_backend/internal/config"
	"codefix_backend/internal/middleware"
	"codefix_backend/internal/model"
	"codefix_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes, no login required.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/stats", c.stats.GetGlobalStats)
		public.POST("/contact", c.contact.SubmitContact)

		public.GET("/challenges", c.challenge.ListChallenges)
		public.GET("/challenges/:id", c.challenge.GetChallenge)
		// Guests may try a challenge; completions only persist for
		// signed-in users.
		public.POST("/challenges/:id/submit", middleware.TryAuthMiddleware(cfg), c.challenge.SubmitChallenge)

		public.GET("/lessons/:id/rating", middleware.TryAuthMiddleware(cfg), c.lesson.GetRating)
		public.POST("/lessons/:id/feedback", c.lesson.SubmitFeedback)
	}

	// Authenticated routes.
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		authGroup.POST("/lessons/:id/vote", c.lesson.Vote)

		authGroup.GET("/progress", c.progress.ListProgress)
		authGroup.POST("/progress", c.progress.MarkComplete)
		authGroup.DELETE("/progress", c.progress.ResetProgress)
		authGroup.DELETE("/progress/:lessonId", c.progress.DeleteCompletion)
	}

	// Admin routes.
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/messages", c.admin.ListMessages)
		admin.GET("/feedback", c.admin.ListFeedback)
		admin.GET("/stats/consistency", c.admin.CheckConsistency)
	}
}

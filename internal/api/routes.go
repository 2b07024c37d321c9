package api

import (
	"net/http"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/metrics"
	"github.com/yulannn/Myo-Fitness-sub004/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services groups what the HTTP layer depends on.
type Services struct {
	Users           service.UserService
	Profiles        service.ProfileService
	Recommendations service.RecommendationService
	Programs        service.ProgramService
	Leaderboards    service.LeaderboardService
	Social          service.SocialService
	Coaching        service.CoachingService
	Exercises       service.ExerciseService
}

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	services Services,
	metricsManager *metrics.Manager,
	gatherer prometheus.Gatherer,
) {
	userHandler := NewUserHandler()
	profileHandler := NewProfileHandler(services.Profiles)
	programHandler := NewProgramHandler(services.Recommendations, services.Programs)
	leaderboardHandler := NewLeaderboardHandler(services.Leaderboards)
	socialHandler := NewSocialHandler(services.Social)
	coachingHandler := NewCoachingHandler(services.Coaching)
	exerciseHandler := NewExerciseHandler(services.Exercises)

	router.Use(PanicRecovery(metricsManager), RequestLogger(), RequestMetrics(metricsManager))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	protected := router.Group("/api/v1")
	protected.Use(AuthMiddleware(jwtSecret, services.Users))
	{
		protected.GET("/me", userHandler.Me)

		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.SaveProfile)

		protected.GET("/recommendations", programHandler.GetRecommendations)

		programGroup := protected.Group("/programs")
		{
			programGroup.GET("", programHandler.GetPrograms)
			programGroup.POST("", programHandler.CreateProgram)
			programGroup.PATCH("/:programId/status", programHandler.UpdateProgramStatus)
			programGroup.GET("/:programId/sessions", programHandler.GetProgramSessions)
		}
		protected.POST("/sessions/:sessionId/complete", programHandler.CompleteSession)

		leaderboardGroup := protected.Group("/leaderboard")
		{
			leaderboardGroup.GET("", leaderboardHandler.GetFriendsLeaderboard)
			leaderboardGroup.GET("/me", leaderboardHandler.GetMyStats)
			leaderboardGroup.POST("/refresh", leaderboardHandler.RefreshMyStats)
		}

		protected.GET("/friends", socialHandler.GetFriends)
		protected.POST("/friends", socialHandler.AddFriend)

		// --- Exercise Routes ---
		// Everyone browses the catalog, only coaches edit it.
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/suggested", exerciseHandler.SuggestExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.GET("/mine", RoleMiddleware(domain.RoleCoach), exerciseHandler.GetCoachExercises)
			exerciseGroup.POST("", RoleMiddleware(domain.RoleCoach), exerciseHandler.CreateExercise)
			exerciseGroup.PUT("/:id", RoleMiddleware(domain.RoleCoach), exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", RoleMiddleware(domain.RoleCoach), exerciseHandler.DeleteExercise)
		}

		// --- Coach Specific Routes ---
		coachGroup := protected.Group("/coach")
		coachGroup.Use(RoleMiddleware(domain.RoleCoach))
		{
			coachGroup.POST("/clients", coachingHandler.AddClientByEmail)
			coachGroup.GET("/clients", coachingHandler.GetManagedClients)
			coachGroup.GET("/clients/:clientId/recommendations", coachingHandler.GetClientRecommendations)
		}
	}
}

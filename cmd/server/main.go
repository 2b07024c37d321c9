package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/api"
	"github.com/yulannn/Myo-Fitness-sub004/internal/config"
	"github.com/yulannn/Myo-Fitness-sub004/internal/jobs"
	"github.com/yulannn/Myo-Fitness-sub004/internal/logging"
	"github.com/yulannn/Myo-Fitness-sub004/internal/metrics"
	"github.com/yulannn/Myo-Fitness-sub004/internal/repository/mongo"
	"github.com/yulannn/Myo-Fitness-sub004/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
)

// @title Myo Fitness API
// @version 1.0
// @description Program recommendations, scheduled training sessions and friend leaderboards.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.ToStdout,
	})
	log.Info("starting myo fitness server ...")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("could not connect to MongoDB: %s", err)
	}
	defer func() {
		log.Info("disconnecting MongoDB ...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorf("failed to disconnect MongoDB: %s", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Infof("connected to database %s", cfg.Database.Name)

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			log.Errorf("ensure indexes: %s", err)
			return
		}
		log.Debug("indexes ensured")
	}()

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsManager := metrics.NewManager(cfg.Metrics.Namespace, "server", registry)

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	profileRepo := mongo.NewMongoFitnessProfileRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	programRepo := mongo.NewMongoProgramRepository(appDB)
	sessionRepo := mongo.NewMongoSessionRepository(appDB)
	statsRepo := mongo.NewMongoLeaderboardStatsRepository(appDB)

	// --- Initialize Services ---
	profileService := service.NewProfileService(profileRepo)
	recommendationService := service.NewRecommendationService(profileService, cfg.Cache.SizeMB, cfg.Cache.TTL, metricsManager)
	leaderboardService := service.NewLeaderboardService(userRepo, sessionRepo, statsRepo, metricsManager, time.Now)
	services := api.Services{
		Users:           service.NewUserService(userRepo),
		Profiles:        profileService,
		Recommendations: recommendationService,
		Programs: service.NewProgramService(
			profileService,
			recommendationService,
			leaderboardService,
			userRepo,
			programRepo,
			sessionRepo,
			metricsManager,
			time.Now,
		),
		Leaderboards: leaderboardService,
		Social:       service.NewSocialService(userRepo),
		Coaching:     service.NewCoachingService(userRepo, recommendationService),
		Exercises:    service.NewExerciseService(exerciseRepo, profileService),
	}

	// --- Background Jobs ---
	scheduler := jobs.NewScheduler(leaderboardService, 30*time.Minute)
	if err := scheduler.ScheduleLeaderboardRefresh(cfg.Leaderboard.RefreshSpec); err != nil {
		log.Fatalf("could not schedule leaderboard refresh: %s", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// --- Initialize Gin Engine ---
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	api.SetupRoutes(router, cfg.JWT.Secret, services, metricsManager, registry)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server ...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %s", err)
	}

	log.Info("server exiting")
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"remote-jobs-backend/config"
	_ "remote-jobs-backend/docs" // Important for Swagger
	v1 "remote-jobs-backend/internal/delivery/http/v1"
	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/internal/repository/jsonfile"
	"remote-jobs-backend/internal/repository/postgres"
	"remote-jobs-backend/internal/scheduler"
	"remote-jobs-backend/internal/scraper"
	"remote-jobs-backend/internal/usecase"
	"remote-jobs-backend/pkg/database"
	"remote-jobs-backend/pkg/logger"
	"remote-jobs-backend/pkg/redis"
)

// @title           Remote Jobs Backend API
// @version         1.0
// @description     Personal job-search assistant: scrapes remote job boards, scores postings against a skill profile and serves the ranked results.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting remote jobs backend", "port", cfg.Port)

	// 3. Setup Storage
	// Postgres when DATABASE_URL is set, otherwise the single-file JSON store.
	var (
		jobRepo      domain.JobRepository
		profileRepo  domain.ProfileRepository
		userRepo     domain.UserRepository
		favoriteRepo domain.FavoriteRepository
	)
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		if err := postgres.Migrate(context.Background(), dbPool); err != nil {
			logger.Log.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}

		jobRepo = postgres.NewJobRepository(dbPool)
		profileRepo = postgres.NewProfileRepository(dbPool)
		userRepo = postgres.NewUserRepository(dbPool)
		favoriteRepo = postgres.NewFavoriteRepository(dbPool)
	} else {
		store := jsonfile.Open(cfg.DataFile)
		jobRepo = jsonfile.NewJobRepository(store)
		profileRepo = jsonfile.NewProfileRepository(store)
		userRepo = jsonfile.NewUserRepository(store)
		favoriteRepo = jsonfile.NewFavoriteRepository(store)
	}

	// 4. Setup Redis (rate limiting; runs fine without it)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		} else {
			defer redis.Close()
		}
	}

	// 5. Setup Scraping Sources
	var live []scraper.Source
	if cfg.ScrapeLiveSources {
		live = []scraper.Source{
			scraper.NewRemoteOK(),
			scraper.NewWeWorkRemotely(),
			scraper.NewIndeed(),
			scraper.NewUpwork(),
		}
	}
	aggregator := scraper.NewAggregator(scraper.NewCurated(), live...)

	// 6. Setup UseCases
	jobUC := usecase.NewJobUsecase(jobRepo, profileRepo, aggregator)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret)
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo)

	// 7. Background Refresh
	sched := scheduler.New(jobUC)
	if err := sched.Start(cfg.ScrapeIntervalHours); err != nil {
		logger.Log.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:      jobUC,
		ProfileUC:  profileUC,
		AuthUC:     authUC,
		FavoriteUC: favoriteUC,
		Config:     cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

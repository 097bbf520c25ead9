package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/blockseblock/backend/docs"
	"github.com/blockseblock/backend/internal/catalog"
	"github.com/blockseblock/backend/internal/config"
	"github.com/blockseblock/backend/internal/handlers"
	"github.com/blockseblock/backend/internal/logger"
	"github.com/blockseblock/backend/internal/metrics"
	"github.com/blockseblock/backend/internal/models"
	"github.com/blockseblock/backend/internal/repositories"
	"github.com/blockseblock/backend/internal/services"
	"github.com/blockseblock/backend/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

// @title BlockseBlock API
// @version 1.0
// @description Video assets, course progress and token rewards for the BlockseBlock learning platform

// @host localhost:3001
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting BlockseBlock backend")

	// Initialize storage
	fileStorage, err := storage.NewLocalStorage(cfg.Storage.UploadsDir)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Initialize repositories
	var seed []models.Video
	if cfg.Storage.SeedSampleVideos {
		seed = sampleVideos()
	}
	videoRepo := repositories.NewVideoRepository(seed...)
	learnerRepo := repositories.NewLearnerRepository(cfg.Rewards.AnnouncementDelay, nil)
	userRepo := repositories.NewUserRepository()
	courseCatalog := catalog.Default()

	m := metrics.New()

	// Initialize services
	videoService := services.NewVideoService(videoRepo, fileStorage, m)
	learningService := services.NewLearningService(courseCatalog, learnerRepo, m)
	walletService := services.NewWalletService(courseCatalog, learnerRepo, m)
	userService := services.NewUserService(userRepo)

	// Initialize handlers
	router := handlers.NewRouter(
		handlers.RouterOptions{
			Logger:             logger.Logger,
			Metrics:            m,
			AllowedOrigins:     cfg.CORS.AllowedOrigins,
			RateLimitPerMinute: cfg.RateLimit.RequestsPerMinute,
			SwaggerURL:         swaggerURL(cfg),
		},
		handlers.NewHealthHandler(logger.Logger),
		handlers.NewVideoHandler(videoService, logger.Logger, cfg.Storage.MaxUploadBytes()),
		handlers.NewCourseHandler(learningService, logger.Logger),
		handlers.NewWalletHandler(walletService, logger.Logger),
		handlers.NewUserHandler(userService, logger.Logger),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Minute, // large uploads
		WriteTimeout:      10 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	videoCount, err := videoRepo.Count(ctx)
	if err != nil {
		logger.Logger.Fatal("Failed to count videos", zap.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Logger.Info("Server starting",
			zap.Int("port", cfg.Server.Port),
			zap.String("uploads_dir", fileStorage.BasePath()),
			zap.Int("videos", videoCount),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Logger.Error("Server stopped with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Logger.Info("Server exited")
}

// swaggerURL returns the location of the generated API document
func swaggerURL(cfg *config.Config) string {
	if cfg.Server.BaseURL != "" {
		return cfg.Server.BaseURL + "/swagger/doc.json"
	}
	return "/swagger/doc.json"
}

// sampleVideos are registered at startup so the catalog is never empty on a fresh install
func sampleVideos() []models.Video {
	return []models.Video{
		{
			ID:          1,
			Title:       "Blockchain Fundamentals - Introduction",
			Filename:    "sample-video-1.mp4",
			URL:         "/uploads/sample-video-1.mp4",
			Size:        "15.2 MB",
			Duration:    "5:30",
			UploadDate:  "2025-01-15",
			Course:      "Blockchain Fundamentals",
			Description: "Introduction to blockchain technology and its core concepts",
		},
		{
			ID:          2,
			Title:       "Smart Contracts - Solidity Basics",
			Filename:    "sample-video-2.mp4",
			URL:         "/uploads/sample-video-2.mp4",
			Size:        "28.7 MB",
			Duration:    "12:45",
			UploadDate:  "2025-01-16",
			Course:      "Smart Contract Development",
			Description: "Learn the basics of Solidity programming language",
		},
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/Dosada05/league-console/brackets"
	"github.com/Dosada05/league-console/config"
	"github.com/Dosada05/league-console/db"
	"github.com/Dosada05/league-console/handlers"
	"github.com/Dosada05/league-console/repositories"
	"github.com/Dosada05/league-console/routes"
	"github.com/Dosada05/league-console/services"
	"github.com/Dosada05/league-console/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	uploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Cloudflare R2 uploader initialized")

	wsHub := brackets.NewHub()
	go wsHub.Run()
	logger.Info("WebSocket hub started")

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	sportRepo := repositories.NewPostgresSportRepository(dbConn)
	modalityRepo := repositories.NewPostgresModalityRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	championshipRepo := repositories.NewPostgresChampionshipRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	newsRepo := repositories.NewPostgresNewsRepository(dbConn)
	sponsorRepo := repositories.NewPostgresSponsorRepository(dbConn)
	historyRepo := repositories.NewPostgresHistoryRepository(dbConn)
	logger.Info("repositories initialized")

	resolver := services.NewReferenceResolver(sportRepo, modalityRepo, teamRepo, playerRepo, championshipRepo)

	authService := services.NewAuthService(userRepo)
	sportService := services.NewSportService(sportRepo, uploader)
	modalityService := services.NewModalityService(modalityRepo, resolver)
	teamService := services.NewTeamService(teamRepo, playerRepo, resolver, uploader)
	playerService := services.NewPlayerService(playerRepo, uploader)
	championshipService := services.NewChampionshipService(championshipRepo, resolver, uploader, wsHub)
	matchService := services.NewMatchService(matchRepo, resolver, uploader, wsHub)
	newsService := services.NewNewsService(newsRepo, uploader)
	sponsorService := services.NewSponsorService(sponsorRepo, uploader)
	historyService := services.NewHistoryService(historyRepo)
	dashboardService := services.NewDashboardService(
		sportRepo, modalityRepo, teamRepo, playerRepo, championshipRepo, matchRepo, newsRepo)
	logger.Info("services initialized")

	jwtSecret := []byte(cfg.JWTSecretKey)

	h := routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService, jwtSecret),
		Sport:        handlers.NewSportHandler(sportService),
		Modality:     handlers.NewModalityHandler(modalityService),
		Team:         handlers.NewTeamHandler(teamService),
		Player:       handlers.NewPlayerHandler(playerService),
		Championship: handlers.NewChampionshipHandler(championshipService),
		Match:        handlers.NewMatchHandler(matchService),
		News:         handlers.NewNewsHandler(newsService),
		Sponsor:      handlers.NewSponsorHandler(sponsorService),
		History:      handlers.NewHistoryHandler(historyService),
		Dashboard:    handlers.NewDashboardHandler(dashboardService),
		WebSocket:    handlers.NewWebSocketHandler(wsHub),
	}

	router := chi.NewRouter()
	routes.SetupRoutes(router, h, jwtSecret, cfg.CORSAllowedOrigins)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}

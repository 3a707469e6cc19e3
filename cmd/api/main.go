package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/auth"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/config"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/database"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/handler"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/repository"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/router"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/service"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/translation"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting menu platform API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Apply schema migrations
	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(pool, logger)
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	dishRepo := repository.NewDishRepository(pool, logger)
	allergenRepo := repository.NewAllergenRepository(pool, logger)
	translationRepo := repository.NewTranslationRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)

	// Token issuer and external translation client
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	translationClient := translation.NewOpenAIClient(
		cfg.Translation.APIKey,
		cfg.Translation.Model,
		cfg.Translation.Timeout,
		logger,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, issuer, logger)
	menuService := service.NewMenuService(menuRepo, logger)
	categoryService := service.NewCategoryService(categoryRepo, menuRepo, logger)
	dishService := service.NewDishService(dishRepo, categoryRepo, menuRepo, allergenRepo, logger)
	allergenService := service.NewAllergenService(allergenRepo, logger)
	translationService := service.NewTranslationService(translationRepo, menuRepo, translationClient, logger)
	publicService := service.NewPublicMenuService(menuRepo, translationRepo, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(authService, logger),
		Menu:        handler.NewMenuHandler(menuService, categoryService, logger),
		Catalog:     handler.NewCatalogHandler(categoryService, dishService, logger),
		Allergen:    handler.NewAllergenHandler(allergenService, logger),
		Translation: handler.NewTranslationHandler(translationService, logger),
		Public:      handler.NewPublicHandler(publicService, logger),
	}

	// Initialize router
	mux := router.New(handlers, issuer, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

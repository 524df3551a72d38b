package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dethrtrns/techwondoe-test-task/internal/config"
	"github.com/dethrtrns/techwondoe-test-task/internal/handler"
	"github.com/dethrtrns/techwondoe-test-task/internal/infrastructure/database"
	"github.com/dethrtrns/techwondoe-test-task/internal/logger"
	"github.com/dethrtrns/techwondoe-test-task/internal/repository"
	"github.com/dethrtrns/techwondoe-test-task/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	logger.Init(cfg.LogLevel)

	// Connect to database
	connectCtx, connectCancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
	client, db, err := database.NewMongo(connectCtx, database.MongoConfig{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDatabase,
	})
	connectCancel()
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("Database disconnect error",
				slog.String("error", err.Error()))
		}
	}()

	// Initialize repositories
	userRepo := repository.NewMongoUserRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	exportHandler := handler.NewExportHandler(userService)
	healthHandler := handler.NewHealthHandler(client)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(userHandler, exportHandler, healthHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

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

	_ "github.com/handyline/handyline-api/docs"

	"github.com/handyline/handyline-api/apps/api/server"
	"github.com/handyline/handyline-api/libs/go/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title           Handyline API
// @version         1.0
// @description     Quote and invoice line-item pricing and persistence for Handyline Home Services

// @contact.name   Handyline Support
// @contact.email  support@handyline.ca

// @host      localhost:8000
// @BasePath  /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	ctx := context.Background()
	cfg, err := server.LoadConfig(ctx)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v\n", err)
	}

	logger.InitLogger(cfg.Stage)
	defer func() { _ = logger.Sync() }()

	srv, err := server.New(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 20 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("stage", cfg.Stage))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Enhancements in flight can take up to 30s.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 35*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	srv.Shutdown(shutdownCtx)

	logger.Info("Server exiting")
}

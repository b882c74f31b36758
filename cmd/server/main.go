package main

// @title           Voting Service API
// @version         1.0
// @description     Weighted voting with per-event candidates, a one-vote-per-voter ledger and live leaderboards
// @host            localhost:8080
// @BasePath        /api/v1
// @schemes         http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voting-service/configs"
	"voting-service/internal/server"
	"voting-service/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	config := configs.Load()

	if err := logger.InitLogger(config.LogLevel); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Logger.Sync()

	app, err := server.NewApp()
	if err != nil {
		logger.Logger.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer app.Shutdown()

	srv := &http.Server{
		Addr:    ":" + app.Port(),
		Handler: app.Router(),
	}

	go func() {
		logger.Logger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server stopped")
}

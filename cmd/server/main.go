package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"dormhub/internal/auth"
	"dormhub/internal/config"
	"dormhub/internal/controllers"
	"dormhub/internal/db"
	"dormhub/internal/logger"
	"dormhub/internal/middleware"
	"dormhub/internal/routes"
	"dormhub/internal/store"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("configuration error: %v", err)
	}

	// Connect to the database, migrate, seed
	gormDB, err := db.Init(cfg)
	if err != nil {
		logrus.Fatalf("database init failed: %v", err)
	}

	appStore := store.NewGormStore(gormDB)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	handler := controllers.NewHandler(appStore, tokens)

	// Setup Gin router
	r := routes.SetupRouter(handler, tokens)

	// Wrap with CORS
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: middleware.EnableCORS(r, cfg.CORSOrigin),
	}

	go func() {
		logrus.Infof("🚀 Server running at :%d", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logrus.Info("shutdown signal received, draining...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("server shutdown: %v", err)
	}
	logrus.Info("server stopped")
}

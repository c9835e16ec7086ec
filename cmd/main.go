// cmd/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go_vocab_drill/internal/config"
	"go_vocab_drill/internal/handlers"
	"go_vocab_drill/internal/learning"
	"go_vocab_drill/internal/logging"
	"go_vocab_drill/internal/repository"
	"go_vocab_drill/internal/service"
)

func main() {
	configPath := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	// 設定ファイル読み込み用の一時的なロガー
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := config.LoadConfig(*configPath); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, config.Cfg.Log.Level)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	db, err := repository.NewDB(config.Cfg.Database.Driver, config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Dependency Injection
	itemRepo := repository.NewGormItemRepository()
	recordRepo := repository.NewGormRecordRepository()

	itemService := service.NewItemService(db, itemRepo)
	sessionService := service.NewSessionService(db, recordRepo, learning.NewComposer(), config.Cfg.App)
	reviewService := service.NewReviewService(db, itemRepo, recordRepo)
	statsService := service.NewStatsService(db, itemRepo, recordRepo)

	r := handlers.NewRouter(handlers.Handlers{
		Item:    handlers.NewItemHandler(itemService, logger),
		Session: handlers.NewSessionHandler(sessionService, logger),
		Review:  handlers.NewReviewHandler(reviewService, logger),
		Stats:   handlers.NewStatsHandler(statsService, logger),
	}, handlers.RouterOptions{
		Logger:         logger,
		CORS:           config.Cfg.CORS,
		MetricsEnabled: config.Cfg.Metrics.Enabled,
		RequestTimeout: 60 * time.Second,
		DB:             sqlDB,
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}
	slog.Info("Server exiting")
}

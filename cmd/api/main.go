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

	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/catalog"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/config"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/database"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/domain"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/interaction"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/logger"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/server"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The server has 30 seconds to finish the requests it is currently
	// handling.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")
	done <- true
}

// loadProducts resolves the configured catalog source. The database is
// read once at startup and closed again; all runtime state is in memory.
func loadProducts(cfg *config.Config, log *zap.Logger) ([]domain.Product, error) {
	switch cfg.Catalog.Source {
	case "postgres":
		db, err := database.New(cfg.Database)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		if err := database.RunMigrations(db, "migrations", log); err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return catalog.LoadPostgres(ctx, db)

	case "csv":
		products, err := catalog.LoadCSV(cfg.Catalog.CSVPath)
		if errors.Is(err, os.ErrNotExist) {
			log.Warn("Catalog file missing, using generated sample catalog",
				zap.String("path", cfg.Catalog.CSVPath),
			)
			return catalog.SampleProducts(), nil
		}
		return products, err

	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting recommendation API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	products, err := loadProducts(cfg, log)
	if err != nil {
		log.Fatal("Failed to load product catalog", zap.Error(err))
	}

	cat, err := catalog.New(products)
	if err != nil {
		log.Fatal("Failed to build product catalog", zap.Error(err))
	}
	log.Info("Product catalog loaded", zap.Int("products", cat.Len()))

	interactions := interaction.NewLog()

	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}

	srv := server.NewServer(cfg, log, cat, interactions, redisClient)

	done := make(chan bool, 1)
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	<-done
	log.Info("Graceful shutdown complete")
}

package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/catalog"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/config"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/interaction"
	custommiddleware "github.com/AhmedElhoceny/Recommendation-AI-System/internal/middleware"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/service"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
}

// NewServer assembles the router and wires the catalog, interaction log
// and service layers together. redisClient may be nil; rate limiting is
// then disabled regardless of configuration.
func NewServer(cfg *config.Config, logger *zap.Logger, cat *catalog.Catalog, interactions *interaction.Log, redisClient *redis.Client) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.MetricsMiddleware())
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.Origins, cfg.Server.Env == "development"))

	if cfg.RateLimit.Enabled && redisClient != nil {
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
			Window:            time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
			KeyPrefix:         "rate_limit",
		}, logger))
	}

	// Plain liveness probe for load balancers; the versioned health
	// endpoint lives under /api/v1.
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	router.Handle("/metrics", promhttp.Handler())

	recommendationService := service.NewRecommendationService(cat, interactions, cfg.Limits)
	recommendationHandler := transport.NewRecommendationHandler(recommendationService, cfg.Limits, logger)
	recommendationHandler.RegisterRoutes(router)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")
	s.logger.Sync()
	return nil
}

package transport

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/catalog"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/config"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/middleware"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/service"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	serviceName = "E-Commerce Recommendation API"
	apiVersion  = "v1"
)

// InteractionRequest is the POST /interaction payload. The interaction
// type defaults to "view"; rating is optional for every type.
type InteractionRequest struct {
	UserID          string   `json:"user_id" validate:"required,max=100"`
	ProductID       string   `json:"product_id" validate:"required"`
	InteractionType string   `json:"interaction_type" validate:"omitempty,oneof=view purchase add_to_cart wishlist"`
	Rating          *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// RecommendationHandler handles HTTP requests for recommendation
// operations.
type RecommendationHandler struct {
	service service.RecommendationService
	limits  config.LimitsConfig
	logger  *zap.Logger
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(svc service.RecommendationService, limits config.LimitsConfig, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service: svc,
		limits:  limits,
		logger:  logger,
	}
}

// RegisterRoutes registers all recommendation routes under /api/v1.
func (h *RecommendationHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/recommendations/{user_id}", h.GetRecommendations)
		r.Get("/similar/{product_id}", h.GetSimilar)
		r.Get("/trending", h.GetTrending)
		r.Get("/category/{category}", h.GetByCategory)
		r.Post("/interaction", h.AddInteraction)
	})
}

// Health reports service liveness.
func (h *RecommendationHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: apiVersion,
	})
}

// GetRecommendations returns personalized recommendations for a user.
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	limit, err := parseLimit(r, h.limits.DefaultRecommendations)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.service.GetUserRecommendations(r.Context(), userID, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, result)
}

// GetSimilar returns products similar to the given one.
func (h *RecommendationHandler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	limit, err := parseLimit(r, h.limits.DefaultRecommendations)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.service.GetSimilarProducts(r.Context(), productID, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, result)
}

// GetTrending returns the most popular products.
func (h *RecommendationHandler) GetTrending(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, h.limits.DefaultPageSize)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.service.GetTrending(r.Context(), limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, result)
}

// GetByCategory returns products of a category.
func (h *RecommendationHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	// chi hands back the raw path segment, so "Home %26 Kitchen" style
	// values need unescaping before validation.
	category := chi.URLParam(r, "category")
	if decoded, err := url.PathUnescape(category); err == nil {
		category = decoded
	}

	limit, err := parseLimit(r, h.limits.DefaultPageSize)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.service.GetByCategory(r.Context(), category, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, result)
}

// AddInteraction records a user-product interaction.
func (h *RecommendationHandler) AddInteraction(w http.ResponseWriter, r *http.Request) {
	var req InteractionRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Interaction payload rejected", zap.Error(err))

		if fieldErrors := middleware.FormatValidationErrors(err); len(fieldErrors) > 0 {
			first := fieldErrors[0]
			middleware.RespondWithValidationError(w, first.Field+": "+first.Message)
			return
		}

		middleware.RespondWithValidationError(w, "Request body is required")
		return
	}

	result, err := h.service.RecordInteraction(r.Context(), req.UserID, req.ProductID, req.InteractionType, req.Rating)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.logger.Info("Interaction recorded",
		zap.String("user_id", result.UserID),
		zap.String("product_id", result.ProductID),
		zap.String("interaction_type", result.InteractionType),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, result)
}

// respondError maps domain errors onto the uniform error body:
// validation failures to 400, unknown products to 404, everything else
// to a 500 that leaks no internals.
func (h *RecommendationHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		h.logger.Warn("Validation failed",
			zap.String("path", r.URL.Path),
			zap.String("field", vErr.Field),
			zap.String("reason", vErr.Message),
		)
		middleware.RespondWithValidationError(w, vErr.Message)
		return
	}

	if errors.Is(err, catalog.ErrProductNotFound) {
		h.logger.Debug("Product not found", zap.String("path", r.URL.Path))
		middleware.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	h.logger.Error("Request failed", zap.String("path", r.URL.Path), zap.Error(err))
	middleware.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

// parseLimit reads the limit query parameter, applying the endpoint
// default when absent. Range checks happen in the service layer.
func parseLimit(r *http.Request, defaultLimit int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &validation.Error{Field: "limit", Message: "Limit must be an integer"}
	}
	return limit, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/catalog"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/config"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/domain"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/engine"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/interaction"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/validation"
)

// ProductSummary is the product shape returned by every read endpoint.
// SimilarityScore is present on similarity-ranked results, Views and
// Purchases on popularity-ranked ones.
type ProductSummary struct {
	ProductID       string   `json:"product_id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	Rating          float64  `json:"rating"`
	Views           *int     `json:"views,omitempty"`
	Purchases       *int     `json:"purchases,omitempty"`
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
}

// UserRecommendations is the personalized recommendation result.
type UserRecommendations struct {
	UserID          string           `json:"user_id"`
	Recommendations []ProductSummary `json:"recommendations"`
	Count           int              `json:"count"`
}

// SimilarProducts is the similar-product lookup result.
type SimilarProducts struct {
	ProductID       string           `json:"product_id"`
	SimilarProducts []ProductSummary `json:"similar_products"`
	Count           int              `json:"count"`
}

// TrendingProducts is the trending ranking result.
type TrendingProducts struct {
	TrendingProducts []ProductSummary `json:"trending_products"`
	Count            int              `json:"count"`
}

// CategoryProducts is the category browse result.
type CategoryProducts struct {
	Category string           `json:"category"`
	Products []ProductSummary `json:"products"`
	Count    int              `json:"count"`
}

// InteractionReceipt echoes a successfully recorded interaction.
type InteractionReceipt struct {
	Message         string `json:"message"`
	UserID          string `json:"user_id"`
	ProductID       string `json:"product_id"`
	InteractionType string `json:"interaction_type"`
}

// RecommendationService orchestrates validation, engine invocation and
// interaction recording.
type RecommendationService interface {
	GetUserRecommendations(ctx context.Context, userID string, limit int) (*UserRecommendations, error)
	GetSimilarProducts(ctx context.Context, productID string, limit int) (*SimilarProducts, error)
	GetTrending(ctx context.Context, limit int) (*TrendingProducts, error)
	GetByCategory(ctx context.Context, category string, limit int) (*CategoryProducts, error)
	RecordInteraction(ctx context.Context, userID, productID, interactionType string, rating *float64) (*InteractionReceipt, error)
}

type recommendationService struct {
	catalog      *catalog.Catalog
	interactions *interaction.Log
	limits       config.LimitsConfig
}

// NewRecommendationService creates a new instance of RecommendationService.
func NewRecommendationService(cat *catalog.Catalog, log *interaction.Log, limits config.LimitsConfig) RecommendationService {
	return &recommendationService{
		catalog:      cat,
		interactions: log,
		limits:       limits,
	}
}

// GetUserRecommendations returns personalized recommendations for a
// user. Users without interaction history get the trending ranking.
func (s *recommendationService) GetUserRecommendations(ctx context.Context, userID string, limit int) (*UserRecommendations, error) {
	userID, err := validation.UserID(userID)
	if err != nil {
		return nil, err
	}
	limit, err = validation.Limit(limit, s.limits.MaxRecommendations)
	if err != nil {
		return nil, err
	}

	products := s.catalog.Snapshot()
	interacted := s.interactions.ProductsByUser(userID)
	ranked := engine.RecommendForUser(products, interacted, limit)

	// New users fall back to trending, which is popularity-shaped
	// rather than similarity-shaped.
	var items []ProductSummary
	if len(interacted) == 0 {
		items = trendingSummaries(ranked)
	} else {
		items = similaritySummaries(ranked)
	}

	return &UserRecommendations{
		UserID:          userID,
		Recommendations: items,
		Count:           len(items),
	}, nil
}

// GetSimilarProducts returns the products most similar to the given one.
func (s *recommendationService) GetSimilarProducts(ctx context.Context, productID string, limit int) (*SimilarProducts, error) {
	productID, err := validation.ProductID(productID)
	if err != nil {
		return nil, err
	}
	limit, err = validation.Limit(limit, s.limits.MaxRecommendations)
	if err != nil {
		return nil, err
	}

	if _, err := s.catalog.Get(productID); err != nil {
		return nil, fmt.Errorf("similar products for %q: %w", productID, err)
	}

	ranked, err := engine.SimilarProducts(s.catalog.Snapshot(), productID, limit)
	if err != nil {
		return nil, fmt.Errorf("similar products for %q: %w", productID, err)
	}

	items := similaritySummaries(ranked)
	return &SimilarProducts{
		ProductID:       productID,
		SimilarProducts: items,
		Count:           len(items),
	}, nil
}

// GetTrending returns the most popular products.
func (s *recommendationService) GetTrending(ctx context.Context, limit int) (*TrendingProducts, error) {
	limit, err := validation.Limit(limit, s.limits.MaxPageSize)
	if err != nil {
		return nil, err
	}

	items := trendingSummaries(engine.Trending(s.catalog.Snapshot(), limit))
	return &TrendingProducts{
		TrendingProducts: items,
		Count:            len(items),
	}, nil
}

// GetByCategory returns the highest-rated products of a category.
func (s *recommendationService) GetByCategory(ctx context.Context, category string, limit int) (*CategoryProducts, error) {
	category, err := validation.Category(category)
	if err != nil {
		return nil, err
	}
	limit, err = validation.Limit(limit, s.limits.MaxPageSize)
	if err != nil {
		return nil, err
	}

	matched := engine.ByCategory(s.catalog.Snapshot(), category, limit)
	items := make([]ProductSummary, 0, len(matched))
	for _, p := range matched {
		items = append(items, baseSummary(p))
	}

	return &CategoryProducts{
		Category: category,
		Products: items,
		Count:    len(items),
	}, nil
}

// RecordInteraction validates and appends a user-product event. A view
// bumps the product's view counter, a purchase its purchase counter.
// Nothing is mutated until every check has passed.
func (s *recommendationService) RecordInteraction(ctx context.Context, userID, productID, interactionType string, rating *float64) (*InteractionReceipt, error) {
	userID, err := validation.UserID(userID)
	if err != nil {
		return nil, err
	}
	productID, err = validation.ProductID(productID)
	if err != nil {
		return nil, err
	}
	if interactionType == "" {
		interactionType = string(domain.InteractionView)
	}
	kind, err := validation.InteractionType(interactionType)
	if err != nil {
		return nil, err
	}
	if rating != nil {
		if err := validation.Rating(*rating); err != nil {
			return nil, err
		}
	}

	if _, err := s.catalog.Get(productID); err != nil {
		return nil, fmt.Errorf("record interaction for %q: %w", productID, err)
	}

	s.interactions.Append(userID, productID, kind, rating)

	switch kind {
	case domain.InteractionView:
		if err := s.catalog.IncrementViews(productID); err != nil {
			return nil, fmt.Errorf("failed to increment views: %w", err)
		}
	case domain.InteractionPurchase:
		if err := s.catalog.IncrementPurchases(productID); err != nil {
			return nil, fmt.Errorf("failed to increment purchases: %w", err)
		}
	}

	return &InteractionReceipt{
		Message:         "Interaction recorded successfully",
		UserID:          userID,
		ProductID:       productID,
		InteractionType: string(kind),
	}, nil
}

func baseSummary(p domain.Product) ProductSummary {
	return ProductSummary{
		ProductID: p.ProductID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Rating:    p.Rating,
	}
}

func similaritySummaries(ranked []engine.Scored) []ProductSummary {
	items := make([]ProductSummary, 0, len(ranked))
	for _, r := range ranked {
		item := baseSummary(r.Product)
		score := r.Score
		item.SimilarityScore = &score
		items = append(items, item)
	}
	return items
}

func trendingSummaries(ranked []engine.Scored) []ProductSummary {
	items := make([]ProductSummary, 0, len(ranked))
	for _, r := range ranked {
		item := baseSummary(r.Product)
		views, purchases := r.Product.Views, r.Product.Purchases
		item.Views = &views
		item.Purchases = &purchases
		items = append(items, item)
	}
	return items
}

// Package engine implements the recommendation scoring strategies:
// content-based similarity, collaborative filtering over a user's
// interaction history, and trending ranking. All functions are pure
// functions of the catalog snapshot they are given.
package engine

import (
	"sort"

	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/catalog"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/domain"
)

// Trending score weights.
const (
	viewWeight     = 0.3
	purchaseWeight = 0.5
	ratingWeight   = 0.2
)

// neighborsPerSource is how many similar products each interacted
// product contributes to a collaborative recommendation.
const neighborsPerSource = 10

// Scored pairs a product with the score that ranked it.
type Scored struct {
	Product domain.Product
	Score   float64
}

// SimilarProducts ranks every other product by cosine similarity to the
// target, descending, ties broken by ascending product id. Returns
// catalog.ErrProductNotFound when the target id is not in the snapshot.
func SimilarProducts(products []domain.Product, productID string, limit int) ([]Scored, error) {
	target := -1
	for i := range products {
		if products[i].ProductID == productID {
			target = i
			break
		}
	}
	if target == -1 {
		return nil, catalog.ErrProductNotFound
	}

	features := featureMatrix(products)

	scored := make([]Scored, 0, len(products)-1)
	for i := range products {
		if i == target {
			continue
		}
		scored = append(scored, Scored{
			Product: products[i],
			Score:   cosine(features[target], features[i]),
		})
	}
	sortScored(scored)

	return top(scored, limit), nil
}

// RecommendForUser produces collaborative recommendations for a user
// from the products they interacted with. A user with no interactions
// gets the trending ranking instead.
func RecommendForUser(products []domain.Product, interacted []string, limit int) []Scored {
	if len(interacted) == 0 {
		return Trending(products, limit)
	}

	interactedSet := make(map[string]struct{}, len(interacted))
	for _, id := range interacted {
		interactedSet[id] = struct{}{}
	}

	// Accumulate similarity mass per candidate across every source
	// product the user touched.
	scores := make(map[string]float64)
	for _, sourceID := range interacted {
		similar, err := SimilarProducts(products, sourceID, neighborsPerSource)
		if err != nil {
			// Interactions only reference validated catalog products.
			continue
		}
		for _, s := range similar {
			if _, already := interactedSet[s.Product.ProductID]; already {
				continue
			}
			scores[s.Product.ProductID] += s.Score
		}
	}

	scored := make([]Scored, 0, len(scores))
	for i := range products {
		if score, ok := scores[products[i].ProductID]; ok {
			scored = append(scored, Scored{Product: products[i], Score: score})
		}
	}
	sortScored(scored)

	return top(scored, limit)
}

// Trending ranks products by views*0.3 + purchases*0.5 + rating*100*0.2,
// descending, ties broken by ascending product id.
func Trending(products []domain.Product, limit int) []Scored {
	scored := make([]Scored, 0, len(products))
	for i := range products {
		scored = append(scored, Scored{
			Product: products[i],
			Score:   TrendingScore(products[i]),
		})
	}
	sortScored(scored)

	return top(scored, limit)
}

// TrendingScore computes the popularity score of a single product.
func TrendingScore(p domain.Product) float64 {
	return float64(p.Views)*viewWeight + float64(p.Purchases)*purchaseWeight + p.Rating*100*ratingWeight
}

// ByCategory returns up to limit products in the given category, rated
// highest first, ties broken by ascending product id. The category is
// expected in canonical casing.
func ByCategory(products []domain.Product, category string, limit int) []domain.Product {
	var matched []domain.Product
	for i := range products {
		if products[i].Category == category {
			matched = append(matched, products[i])
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Rating != matched[j].Rating {
			return matched[i].Rating > matched[j].Rating
		}
		return matched[i].ProductID < matched[j].ProductID
	})

	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched
}

func sortScored(scored []Scored) {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Product.ProductID < scored[j].Product.ProductID
	})
}

func top(scored []Scored, limit int) []Scored {
	if limit < len(scored) {
		return scored[:limit]
	}
	return scored
}

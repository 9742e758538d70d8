package engine

import (
	"math"
	"sort"

	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/domain"
)

// featureMatrix builds one feature vector per product: a one-hot
// encoding of the categories present in the snapshot followed by
// min-max normalized price and rating. With a constant price or rating
// column the normalized value is 0 for every product.
func featureMatrix(products []domain.Product) [][]float64 {
	categories := categoryIndex(products)

	minPrice, maxPrice := math.Inf(1), math.Inf(-1)
	minRating, maxRating := math.Inf(1), math.Inf(-1)
	for i := range products {
		minPrice = math.Min(minPrice, products[i].Price)
		maxPrice = math.Max(maxPrice, products[i].Price)
		minRating = math.Min(minRating, products[i].Rating)
		maxRating = math.Max(maxRating, products[i].Rating)
	}

	width := len(categories) + 2
	matrix := make([][]float64, len(products))
	for i := range products {
		vec := make([]float64, width)
		vec[categories[products[i].Category]] = 1
		vec[len(categories)] = minMax(products[i].Price, minPrice, maxPrice)
		vec[len(categories)+1] = minMax(products[i].Rating, minRating, maxRating)
		matrix[i] = vec
	}
	return matrix
}

// categoryIndex assigns each category present in the snapshot a stable
// one-hot position, ordered by category name.
func categoryIndex(products []domain.Product) map[string]int {
	seen := make(map[string]struct{})
	var names []string
	for i := range products {
		if _, ok := seen[products[i].Category]; !ok {
			seen[products[i].Category] = struct{}{}
			names = append(names, products[i].Category)
		}
	}
	sort.Strings(names)

	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	return index
}

func minMax(v, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (v - min) / (max - min)
}

// cosine computes the cosine similarity of two vectors, defined as 0
// when either vector has zero norm.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

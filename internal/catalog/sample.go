package catalog

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/domain"
)

const sampleSize = 50

// sampleSeed keeps the generated catalog stable across restarts so local
// runs and tests see the same data.
const sampleSeed = 42

// SampleProducts generates a deterministic demo catalog of 50 products,
// used when no catalog file is configured or the file is missing.
func SampleProducts() []domain.Product {
	rng := rand.New(rand.NewSource(sampleSeed))

	products := make([]domain.Product, 0, sampleSize)
	for i := 1; i <= sampleSize; i++ {
		products = append(products, domain.Product{
			ProductID: fmt.Sprintf("P%03d", i),
			Name:      fmt.Sprintf("Product %d", i),
			Category:  domain.Categories[rng.Intn(len(domain.Categories))],
			Price:     round2(10 + rng.Float64()*490),
			Rating:    round1(3 + rng.Float64()*2),
			Views:     100 + rng.Intn(9900),
			Purchases: 10 + rng.Intn(990),
		})
	}
	return products
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

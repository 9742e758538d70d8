package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/domain"
)

// LoadPostgres reads the product table as a one-time catalog source.
// The database is only a startup data source; runtime state (counters,
// interactions) stays in memory and is never written back.
func LoadPostgres(ctx context.Context, db *sql.DB) ([]domain.Product, error) {
	query := `
		SELECT product_id, name, category, price, rating, views, purchases
		FROM products
		ORDER BY product_id
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Category, &p.Price, &p.Rating, &p.Views, &p.Purchases); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product rows: %w", err)
	}

	return products, nil
}

package domain

// Product represents a product in the catalog. All fields except the
// Views and Purchases counters are immutable after the catalog load.
type Product struct {
	ProductID string  `json:"product_id" db:"product_id"`
	Name      string  `json:"name" db:"name"`
	Category  string  `json:"category" db:"category"`
	Price     float64 `json:"price" db:"price"`
	Rating    float64 `json:"rating" db:"rating"`
	Views     int     `json:"views" db:"views"`
	Purchases int     `json:"purchases" db:"purchases"`
}

// Categories is the fixed category set shared by validation and the
// category-browse endpoint.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Books",
	"Home & Kitchen",
	"Sports",
}

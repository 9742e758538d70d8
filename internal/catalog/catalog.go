package catalog

import (
	"errors"
	"sort"
	"sync"

	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyCatalog    = errors.New("catalog contains no products")
	ErrDuplicateID     = errors.New("duplicate product id in catalog source")
)

// Catalog is the in-memory product table. It is loaded once at startup;
// afterwards only the view/purchase counters mutate. Reads take snapshots
// so ranking never observes a half-applied increment.
type Catalog struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	order    []string // product ids in ascending order
}

// New builds a catalog from the loaded product rows.
func New(products []domain.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		products: make(map[string]*domain.Product, len(products)),
		order:    make([]string, 0, len(products)),
	}
	for i := range products {
		p := products[i]
		if _, exists := c.products[p.ProductID]; exists {
			return nil, ErrDuplicateID
		}
		c.products[p.ProductID] = &p
		c.order = append(c.order, p.ProductID)
	}
	sort.Strings(c.order)

	return c, nil
}

// Get returns a copy of the product with the given id.
func (c *Catalog) Get(productID string) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[productID]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return *p, nil
}

// Snapshot returns a copy of every product in ascending product id order.
func (c *Catalog) Snapshot() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]domain.Product, 0, len(c.order))
	for _, id := range c.order {
		snapshot = append(snapshot, *c.products[id])
	}
	return snapshot
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// IncrementViews bumps the view counter of a product.
func (c *Catalog) IncrementViews(productID string) error {
	return c.increment(productID, func(p *domain.Product) { p.Views++ })
}

// IncrementPurchases bumps the purchase counter of a product.
func (c *Catalog) IncrementPurchases(productID string) error {
	return c.increment(productID, func(p *domain.Product) { p.Purchases++ })
}

func (c *Catalog) increment(productID string, apply func(*domain.Product)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.products[productID]
	if !ok {
		return ErrProductNotFound
	}
	apply(p)
	return nil
}

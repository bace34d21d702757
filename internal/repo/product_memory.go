package repo

import (
	"context"
	"slices"
	"sync"

	"github.com/rogerio-castellano/shophub/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates a repository holding a copy of products.
func NewInMemoryProductRepository(products ...models.Product) *InMemoryProductRepository {
	return &InMemoryProductRepository{products: slices.Clone(products)}
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetFeatured returns the first limit products.
func (r *InMemoryProductRepository) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := min(max(limit, 0), len(r.products))
	out := make([]models.Product, n)
	copy(out, r.products[:n])
	return out, nil
}

// GetCategories returns the distinct categories in order of first appearance.
func (r *InMemoryProductRepository) GetCategories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	categories := []string{}
	for _, p := range r.products {
		if !slices.Contains(categories, p.Category) {
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

// ReplaceAll swaps the whole catalog.
func (r *InMemoryProductRepository) ReplaceAll(ctx context.Context, products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = slices.Clone(products)
	return nil
}

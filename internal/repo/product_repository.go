package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/shophub/internal/models"
)

// ProductRepository defines the read operations of the product catalog.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (models.Product, error)
	GetFeatured(ctx context.Context, limit int) ([]models.Product, error)
	GetCategories(ctx context.Context) ([]string, error)
}

// CatalogWriter is implemented by repositories that can hold a local copy of the catalog.
type CatalogWriter interface {
	ReplaceAll(ctx context.Context, products []models.Product) error
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

package repo_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rogerio-castellano/shophub/internal/cache"
	"github.com/rogerio-castellano/shophub/internal/models"
	"github.com/rogerio-castellano/shophub/internal/repo"
	"github.com/sirupsen/logrus"
)

type countingRepo struct {
	repo.ProductRepository
	getAll int
	byID   int
}

func (c *countingRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	c.getAll++
	return c.ProductRepository.GetAll(ctx)
}

func (c *countingRepo) GetByID(ctx context.Context, id int) (models.Product, error) {
	c.byID++
	return c.ProductRepository.GetByID(ctx, id)
}

type brokenCache struct{}

func (brokenCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (brokenCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.New("connection refused")
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func seed() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Backpack", Price: 109.95, Category: "men's clothing"},
		{ID: 2, Title: "Ring", Price: 9.99, Category: "jewelery"},
		{ID: 3, Title: "Jacket", Price: 55.99, Category: "men's clothing"},
	}
}

func TestCachedProductRepository_ServesFromCache(t *testing.T) {
	ctx := context.Background()
	src := &countingRepo{ProductRepository: repo.NewInMemoryProductRepository(seed()...)}
	r := repo.NewCachedProductRepository(src, cache.NewMemoryCache(), time.Minute, discardLogger())

	for i := 0; i < 3; i++ {
		products, err := r.GetAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 3 {
			t.Fatalf("expected 3 products, got %d", len(products))
		}
	}
	if src.getAll != 1 {
		t.Errorf("expected 1 source call, got %d", src.getAll)
	}
}

func TestCachedProductRepository_DoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	src := &countingRepo{ProductRepository: repo.NewInMemoryProductRepository(seed()...)}
	r := repo.NewCachedProductRepository(src, cache.NewMemoryCache(), time.Minute, discardLogger())

	for i := 0; i < 2; i++ {
		if _, err := r.GetByID(ctx, 42); !errors.Is(err, repo.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	}
	if src.byID != 2 {
		t.Errorf("expected 2 source calls, got %d", src.byID)
	}
}

func TestCachedProductRepository_BrokenCacheFallsThrough(t *testing.T) {
	r := repo.NewCachedProductRepository(repo.NewInMemoryProductRepository(seed()...), brokenCache{}, time.Minute, discardLogger())

	p, err := r.GetByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "Ring" {
		t.Errorf("expected Ring, got %q", p.Title)
	}
}

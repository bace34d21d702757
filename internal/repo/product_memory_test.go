package repo_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/rogerio-castellano/shophub/internal/models"
	"github.com/rogerio-castellano/shophub/internal/repo"
)

func TestInMemoryProductRepository(t *testing.T) {
	ctx := context.Background()
	r := repo.NewInMemoryProductRepository(seed()...)

	featured, _ := r.GetFeatured(ctx, 2)
	if len(featured) != 2 || featured[0].ID != 1 {
		t.Errorf("unexpected featured products: %+v", featured)
	}

	all, _ := r.GetFeatured(ctx, 50)
	if len(all) != 3 {
		t.Errorf("expected limit to be capped at 3, got %d", len(all))
	}

	categories, _ := r.GetCategories(ctx)
	if !slices.Equal(categories, []string{"men's clothing", "jewelery"}) {
		t.Errorf("unexpected categories: %v", categories)
	}

	if _, err := r.GetByID(ctx, 9); !errors.Is(err, repo.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}

	_ = r.ReplaceAll(ctx, []models.Product{{ID: 9, Title: "Monitor"}})
	if p, err := r.GetByID(ctx, 9); err != nil || p.Title != "Monitor" {
		t.Errorf("expected Monitor after ReplaceAll, got %+v (%v)", p, err)
	}
}

func TestInMemorySessionRepository(t *testing.T) {
	ctx := context.Background()
	r := repo.NewInMemorySessionRepository()

	if _, err := r.Load(ctx, "abc"); !errors.Is(err, repo.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	snap := models.Snapshot{Favorites: []models.Product{{ID: 1}}}
	_ = r.Save(ctx, "abc", snap)

	got, err := r.Load(ctx, "abc")
	if err != nil || len(got.Favorites) != 1 {
		t.Fatalf("unexpected snapshot: %+v (%v)", got, err)
	}

	_ = r.Delete(ctx, "abc")
	if _, err := r.Load(ctx, "abc"); !errors.Is(err, repo.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

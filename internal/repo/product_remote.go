package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/shophub/internal/fakestore"
	"github.com/rogerio-castellano/shophub/internal/models"
)

// RemoteProductRepository reads the catalog straight from the FakeStore API.
type RemoteProductRepository struct {
	client *fakestore.Client
}

func NewRemoteProductRepository(client *fakestore.Client) *RemoteProductRepository {
	return &RemoteProductRepository{client: client}
}

func (r *RemoteProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.client.ListProducts(ctx)
}

func (r *RemoteProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	p, err := r.client.GetProduct(ctx, id)
	if errors.Is(err, fakestore.ErrProductNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *RemoteProductRepository) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	return r.client.ListFeatured(ctx, limit)
}

func (r *RemoteProductRepository) GetCategories(ctx context.Context) ([]string, error) {
	return r.client.ListCategories(ctx)
}

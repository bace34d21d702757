package repo

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/rogerio-castellano/shophub/internal/cache"
	"github.com/rogerio-castellano/shophub/internal/models"
	"github.com/sirupsen/logrus"
)

// CachedProductRepository answers reads from a cache and falls back to the
// wrapped repository on a miss. Cache errors never fail a read.
type CachedProductRepository struct {
	source ProductRepository
	cache  cache.Cache
	ttl    time.Duration
	log    logrus.FieldLogger
}

func NewCachedProductRepository(source ProductRepository, c cache.Cache, ttl time.Duration, log logrus.FieldLogger) *CachedProductRepository {
	return &CachedProductRepository{source: source, cache: c, ttl: ttl, log: log}
}

func (r *CachedProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return cached(ctx, r, "catalog:products", func() ([]models.Product, error) {
		return r.source.GetAll(ctx)
	})
}

func (r *CachedProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	return cached(ctx, r, "catalog:product:"+strconv.Itoa(id), func() (models.Product, error) {
		return r.source.GetByID(ctx, id)
	})
}

func (r *CachedProductRepository) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	return cached(ctx, r, "catalog:featured:"+strconv.Itoa(limit), func() ([]models.Product, error) {
		return r.source.GetFeatured(ctx, limit)
	})
}

func (r *CachedProductRepository) GetCategories(ctx context.Context) ([]string, error) {
	return cached(ctx, r, "catalog:categories", func() ([]string, error) {
		return r.source.GetCategories(ctx)
	})
}

func cached[T any](ctx context.Context, r *CachedProductRepository, key string, load func() (T, error)) (T, error) {
	var value T

	raw, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(raw, &value); jsonErr == nil {
			return value, nil
		}
		r.log.WithField("key", key).Warn("dropping undecodable cache entry")
	case !errors.Is(err, cache.ErrMiss):
		r.log.WithError(err).WithField("key", key).Warn("cache read failed")
	}

	value, err = load()
	if err != nil {
		return value, err
	}

	if raw, err := json.Marshal(value); err == nil {
		if err := r.cache.Set(ctx, key, raw, r.ttl); err != nil {
			r.log.WithError(err).WithField("key", key).Warn("cache write failed")
		}
	}
	return value, nil
}

package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/shophub/internal/models"
	"github.com/rogerio-castellano/shophub/internal/redissvc"
)

// RedisSessionRepository stores each session as a JSON document that expires
// after ttl without writes.
type RedisSessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionRepository(rs *redissvc.RedisService, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{rdb: rs.Rdb(), ttl: ttl}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (r *RedisSessionRepository) Load(ctx context.Context, id string) (models.Snapshot, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Snapshot{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Snapshot{}, pkgerrors.Wrapf(err, "load session %s", id)
	}

	var s models.Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return models.Snapshot{}, pkgerrors.Wrapf(err, "decode session %s", id)
	}
	return s, nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, id string, s models.Snapshot) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return pkgerrors.Wrapf(err, "encode session %s", id)
	}
	if err := r.rdb.Set(ctx, sessionKey(id), raw, r.ttl).Err(); err != nil {
		return pkgerrors.Wrapf(err, "save session %s", id)
	}
	return nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		return pkgerrors.Wrapf(err, "delete session %s", id)
	}
	return nil
}

package ban

import (
	"context"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/shophub/internal/redissvc"
)

const (
	strikeKeyPrefix = "ratelimit:strikes:"
	banKeyPrefix    = "ratelimit:ban:"
)

// RedisStore shares strikes and bans between instances.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rs *redissvc.RedisService) *RedisStore {
	return &RedisStore{rdb: rs.Rdb()}
}

func (r *RedisStore) Strike(ctx context.Context, key string, window time.Duration) (int, error) {
	k := strikeKeyPrefix + key
	var incr *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, window)
		return nil
	})
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "strike %s", key)
	}
	return int(incr.Val()), nil
}

func (r *RedisStore) Ban(ctx context.Context, key string, d time.Duration) error {
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, banKeyPrefix+key, time.Now().Add(d).Unix(), d)
		pipe.Del(ctx, strikeKeyPrefix+key)
		return nil
	})
	return pkgerrors.Wrapf(err, "ban %s", key)
}

func (r *RedisStore) IsBanned(ctx context.Context, key string) (bool, error) {
	n, err := r.rdb.Exists(ctx, banKeyPrefix+key).Result()
	if err != nil {
		return false, pkgerrors.Wrapf(err, "check ban %s", key)
	}
	return n > 0, nil
}

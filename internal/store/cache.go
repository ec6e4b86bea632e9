package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gocable/internal/models"
)

const (
	simulationKeyPrefix = "gocable:simulation:"
	listKeyPrefix       = "gocable:simulations:list:"
	listKeySet          = "gocable:simulations:list-keys"
)

// Cached is a read-through Redis cache in front of another Store.
// Cache failures are logged and fall through to the backing store.
type Cached struct {
	next   Store
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCached wraps next with a cache whose entries expire after ttl
func NewCached(next Store, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Cached {
	return &Cached{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func (c *Cached) Create(ctx context.Context, sim *models.Simulation) error {
	if err := c.next.Create(ctx, sim); err != nil {
		return err
	}

	// Every cached list is stale now
	keys, err := c.rdb.SMembers(ctx, listKeySet).Result()
	if err != nil {
		c.logger.Warn("history cache: read list keys", zap.Error(err))
		return nil
	}
	keys = append(keys, listKeySet)
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("history cache: invalidate lists", zap.Error(err))
	}
	return nil
}

func (c *Cached) List(ctx context.Context, limit int) ([]models.Simulation, error) {
	limit = normalizeLimit(limit)
	key := listKey(limit)

	var sims []models.Simulation
	if c.lookup(ctx, key, &sims) {
		return sims, nil
	}

	sims, err := c.next.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	c.remember(ctx, key, sims, func(pipe redis.Pipeliner) {
		pipe.SAdd(ctx, listKeySet, key)
		pipe.Expire(ctx, listKeySet, c.ttl)
	})
	return sims, nil
}

func (c *Cached) Get(ctx context.Context, id string) (*models.Simulation, error) {
	key := simulationKeyPrefix + id

	var sim models.Simulation
	if c.lookup(ctx, key, &sim) {
		return &sim, nil
	}

	found, err := c.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.remember(ctx, key, found, nil)
	return found, nil
}

// lookup decodes the cached value at key into dst and reports a hit
func (c *Cached) lookup(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.logger.Warn("history cache: get", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Warn("history cache: decode", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// remember stores v at key; extra adds commands to the same pipeline
func (c *Cached) remember(ctx context.Context, key string, v any, extra func(redis.Pipeliner)) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("history cache: encode", zap.String("key", key), zap.Error(err))
		return
	}

	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, raw, c.ttl)
		if extra != nil {
			extra(pipe)
		}
		return nil
	})
	if err != nil {
		c.logger.Warn("history cache: set", zap.String("key", key), zap.Error(err))
	}
}

func listKey(limit int) string {
	return fmt.Sprintf("%s%d", listKeyPrefix, limit)
}

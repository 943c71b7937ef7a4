package rediscache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-backend/internal/domain/entity"
	"github.com/oksasatya/go-auth-backend/pkg/helpers"
)

const (
	genKey     = "user:identity:gen"
	defaultTTL = 5 * time.Minute
)

// IdentityCache is a read-through cache of identity summaries keyed by id.
// Token validation hits it on every request, so a short TTL keeps lookups
// cheap without holding deleted identities alive for long. InvalidateAll
// bumps a generation counter instead of scanning keys, so the admin reset
// drops the whole cache in one round trip.
type IdentityCache struct {
	RDB    *redis.Client
	TTL    time.Duration
	Logger *logrus.Logger
}

func New(rdb *redis.Client, logger *logrus.Logger) *IdentityCache {
	return &IdentityCache{RDB: rdb, TTL: defaultTTL, Logger: logger}
}

func (c *IdentityCache) key(ctx context.Context, id int64) (string, error) {
	gen, err := c.RDB.Get(ctx, genKey).Result()
	if err != nil && err != redis.Nil {
		return "", err
	}
	if gen == "" {
		gen = "0"
	}
	return "user:identity:" + gen + ":" + strconv.FormatInt(id, 10), nil
}

// Get returns the cached summary for id, or ok=false on miss or redis error.
// Errors are logged and swallowed; the caller falls back to the store.
func (c *IdentityCache) Get(ctx context.Context, id int64) (entity.Summary, bool) {
	key, err := c.key(ctx, id)
	if err != nil {
		c.warn(err, "identity cache key failed")
		return entity.Summary{}, false
	}
	var s entity.Summary
	found, err := helpers.RedisGetJSON(ctx, c.RDB, key, &s)
	if err != nil {
		c.warn(err, "identity cache get failed")
		return entity.Summary{}, false
	}
	return s, found
}

// Set stores the summary for its TTL. Best effort.
func (c *IdentityCache) Set(ctx context.Context, s entity.Summary) {
	key, err := c.key(ctx, s.ID)
	if err != nil {
		c.warn(err, "identity cache key failed")
		return
	}
	if err := helpers.RedisSetJSON(ctx, c.RDB, key, s, c.TTL); err != nil {
		c.warn(err, "identity cache set failed")
	}
}

// InvalidateAll makes every cached summary unreachable by bumping the
// generation counter. Stale entries age out via their TTL.
func (c *IdentityCache) InvalidateAll(ctx context.Context) {
	if err := c.RDB.Incr(ctx, genKey).Err(); err != nil {
		c.warn(err, "identity cache invalidate failed")
	}
}

func (c *IdentityCache) warn(err error, msg string) {
	if c.Logger != nil {
		c.Logger.WithError(err).Warn(msg)
	}
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

const defaultTTL = 10 * time.Minute

// CatalogRepository serves category listings from Redis and falls back to the
// wrapped repository on a miss or on any Redis error. Everything else passes
// straight through.
type CatalogRepository struct {
	store.CatalogRepository

	rdb    *redis.Client
	ttl    time.Duration
	prefix string
	log    *slog.Logger
}

type Config struct {
	TTL    time.Duration
	Prefix string
}

func NewCatalogRepository(inner store.CatalogRepository, rdb *redis.Client, log *slog.Logger, cfg Config) *CatalogRepository {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "salonbook:catalog"
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CatalogRepository{
		CatalogRepository: inner,
		rdb:               rdb,
		ttl:               cfg.TTL,
		prefix:            prefix,
		log:               log,
	}
}

func (c *CatalogRepository) ListServicesByCategory(ctx context.Context, category domain.Category) ([]domain.Service, error) {
	var rows []domain.Service
	key := c.key("services", category)
	if c.get(ctx, key, &rows) {
		return rows, nil
	}
	rows, err := c.CatalogRepository.ListServicesByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, rows)
	return rows, nil
}

func (c *CatalogRepository) ListArtistsBySpecialization(ctx context.Context, category domain.Category) ([]domain.Artist, error) {
	var rows []domain.Artist
	key := c.key("artists", category)
	if c.get(ctx, key, &rows) {
		return rows, nil
	}
	rows, err := c.CatalogRepository.ListArtistsBySpecialization(ctx, category)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, rows)
	return rows, nil
}

// Invalidate drops every cached listing, e.g. after reseeding the catalog.
func (c *CatalogRepository) Invalidate(ctx context.Context) error {
	keys := make([]string, 0, 2*len(domain.Categories()))
	for _, cat := range domain.Categories() {
		keys = append(keys, c.key("services", cat), c.key("artists", cat))
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *CatalogRepository) key(kind string, category domain.Category) string {
	return c.prefix + ":" + kind + ":" + string(category)
}

func (c *CatalogRepository) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("catalog cache read failed", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn("catalog cache entry unreadable", "key", key, "err", err)
		return false
	}
	return true
}

func (c *CatalogRepository) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("catalog cache write failed", "key", key, "err", err)
	}
}

// ReadyCheck pings Redis.
func ReadyCheck(rdb *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}

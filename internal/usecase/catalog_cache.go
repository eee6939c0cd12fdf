package usecase

import (
	"context"
	"time"
)

// CatalogCache is the read cache for reference data; the production
// implementation sits on Redis and degrades to a miss when unavailable.
type CatalogCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const (
	cacheKeySkills     = "catalog:skills"
	cacheKeyIndustries = "catalog:industries"

	catalogCacheTTL = 10 * time.Minute
)

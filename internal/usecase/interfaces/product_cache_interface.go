package interfaces

import (
	"context"
	"time"

	"acme_shop/internal/domain/entities"
)

// IProductCache is the read-through cache in front of single-product lookups
// on the storefront. Both operations are best-effort: a miss or a cache
// failure falls back to the repository.

type IProductCache interface {
	Get(ctx context.Context, id string) (entities.Product, bool)
	Set(ctx context.Context, p entities.Product, ttl time.Duration)
}

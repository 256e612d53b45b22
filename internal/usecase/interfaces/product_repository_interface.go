package interfaces

import (
	"context"

	"acme_shop/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// UpdateInventory writes an absolute inventory count; the caller computes the
// new value from the current one (read-modify-write, no conditional check).

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateInventory(ctx context.Context, id string, inventory int) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

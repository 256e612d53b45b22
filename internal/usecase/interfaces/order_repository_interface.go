package interfaces

import (
	"context"

	"acme_shop/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// GetByID and UpdateStatus return the zero value with a nil error when no
// order exists; use cases translate that into a not-found error.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

package usecase

import (
	"context"

	"acme_shop/internal/domain/entities"
	"acme_shop/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IInventoryReconciler adjusts product stock counts to reflect a change in
// order fulfillment state.

type IInventoryReconciler interface {
	Reconcile(ctx context.Context, items []entities.OrderItem, increase bool) error
}

// InventoryUseCase applies line-item quantities to product inventory, one
// item at a time in input order. Each adjustment is an independent
// read-modify-write: a failure partway through leaves earlier items adjusted
// and later ones untouched, and nothing is rolled back. Decrements are not
// floored, so inventory can go negative.
type InventoryUseCase struct {
	products interfaces.IProductRepository
	logger   *zap.Logger
}

var _ IInventoryReconciler = (*InventoryUseCase)(nil)

func NewInventoryUseCase(products interfaces.IProductRepository, logger *zap.Logger) *InventoryUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryUseCase{products: products, logger: logger}
}

func (u *InventoryUseCase) Reconcile(ctx context.Context, items []entities.OrderItem, increase bool) error {
	for _, item := range items {
		p, err := u.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if p.ID == "" {
			return ErrProductNotFound
		}

		newInventory := p.Inventory - item.Quantity
		if increase {
			newInventory = p.Inventory + item.Quantity
		}

		if _, err := u.products.UpdateInventory(ctx, item.ProductID, newInventory); err != nil {
			return err
		}

		u.logger.Info("inventory adjusted",
			zap.String("product_id", item.ProductID),
			zap.Int("quantity", item.Quantity),
			zap.Bool("increase", increase),
			zap.Int("inventory", newInventory),
		)
	}
	return nil
}

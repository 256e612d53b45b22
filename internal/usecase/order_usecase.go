package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"acme_shop/internal/domain/entities"
	"acme_shop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrOrderHasNoItems      = errors.New("order has no items")
	ErrInvalidOrderItem     = errors.New("invalid order item")
	ErrInvalidOrderCustomer = errors.New("invalid customer details")
)

// IOrderUseCase exposes the order operations of both applications: checkout
// on the storefront, listing and status transitions on the admin dashboard.

type IOrderUseCase interface {
	Checkout(ctx context.Context, o entities.Order) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

type OrderUseCase struct {
	repo      interfaces.IOrderRepository
	inventory IInventoryReconciler
	mailer    interfaces.IMailSender
	logger    *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, inventory IInventoryReconciler, mailer interfaces.IMailSender, logger *zap.Logger) *OrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderUseCase{repo: repo, inventory: inventory, mailer: mailer, logger: logger}
}

// Checkout records a new order with status pending. Line items are stored as
// given (they are snapshots taken by the storefront); the total amount is
// recomputed here as the sum of price x quantity so the stored total always
// matches the stored items. The confirmation email is best-effort.
func (u *OrderUseCase) Checkout(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.CustomerName = strings.TrimSpace(o.CustomerName)
	o.CustomerEmail = strings.TrimSpace(o.CustomerEmail)
	o.CustomerPhone = strings.TrimSpace(o.CustomerPhone)
	o.ShippingAddress = strings.TrimSpace(o.ShippingAddress)

	if o.CustomerName == "" || o.CustomerEmail == "" || o.ShippingAddress == "" {
		return entities.Order{}, ErrInvalidOrderCustomer
	}
	if len(o.Items) == 0 {
		return entities.Order{}, ErrOrderHasNoItems
	}

	total := 0.0
	for _, item := range o.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.Price < 0 {
			return entities.Order{}, ErrInvalidOrderItem
		}
		total += item.Price * float64(item.Quantity)
	}

	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.TotalAmount = total
	o.Status = entities.OrderStatusPending
	o.CreatedAt = now
	o.UpdatedAt = now

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}

	if u.mailer != nil {
		if err := u.mailer.SendOrderConfirmation(ctx, created); err != nil {
			u.logger.Warn("order confirmation email failed",
				zap.String("order_id", created.ID), zap.Error(err))
		}
	}

	u.logger.Info("order created",
		zap.String("order_id", created.ID),
		zap.Int("items", len(created.Items)),
		zap.Float64("total", created.TotalAmount),
	)
	return created, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortOrdersNewestFirst(orders)
	return orders, nil
}

// UpdateStatus writes the requested status and applies the inventory side
// effect implied by the transition: entering delivered consumes stock,
// leaving delivered restores it, every other transition touches no product.
//
// The status write and the product writes are separate calls against the
// store, not one transaction. A failure between them leaves the status
// updated with inventory unadjusted; the error is returned to the caller and
// nothing is rolled back.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !entities.ValidOrderStatus(status) {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if current.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	wasDelivered := current.Status == entities.OrderStatusDelivered
	isDelivered := status == entities.OrderStatusDelivered

	switch {
	case !wasDelivered && isDelivered:
		err = u.inventory.Reconcile(ctx, current.Items, false)
	case wasDelivered && !isDelivered:
		err = u.inventory.Reconcile(ctx, current.Items, true)
	}
	if err != nil {
		u.logger.Error("inventory reconciliation failed",
			zap.String("order_id", id),
			zap.String("from", string(current.Status)),
			zap.String("to", string(status)),
			zap.Error(err),
		)
		return entities.Order{}, err
	}

	u.logger.Info("order status updated",
		zap.String("order_id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(status)),
	)
	return updated, nil
}

func sortOrdersNewestFirst(orders []entities.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

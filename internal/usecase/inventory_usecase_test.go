package usecase

import (
	"context"
	"errors"
	"testing"

	"acme_shop/internal/domain/entities"
	mock_interfaces "acme_shop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInventoryUseCase_Reconcile(t *testing.T) {
	t.Run("decrease on delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewInventoryUseCase(products, nil)

		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Inventory: 10}, nil)
		products.EXPECT().UpdateInventory(gomock.Any(), "p-1", 8).Return(entities.Product{ID: "p-1", Inventory: 8}, nil)

		err := uc.Reconcile(context.Background(), []entities.OrderItem{
			{ProductID: "p-1", Quantity: 2},
		}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("increase when leaving delivered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewInventoryUseCase(products, nil)

		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Inventory: 10}, nil)
		products.EXPECT().UpdateInventory(gomock.Any(), "p-1", 15).Return(entities.Product{ID: "p-1", Inventory: 15}, nil)

		err := uc.Reconcile(context.Background(), []entities.OrderItem{
			{ProductID: "p-1", Quantity: 5},
		}, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no floor at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewInventoryUseCase(products, nil)

		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Inventory: 3}, nil)
		products.EXPECT().UpdateInventory(gomock.Any(), "p-1", -2).Return(entities.Product{ID: "p-1", Inventory: -2}, nil)

		err := uc.Reconcile(context.Background(), []entities.OrderItem{
			{ProductID: "p-1", Quantity: 5},
		}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewInventoryUseCase(products, nil)

		products.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Product{}, nil)

		err := uc.Reconcile(context.Background(), []entities.OrderItem{
			{ProductID: "gone", Quantity: 1},
		}, false)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("mid sequence failure keeps earlier writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewInventoryUseCase(products, nil)

		// First item commits, second fails; there is no rollback.
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Inventory: 10}, nil)
		products.EXPECT().UpdateInventory(gomock.Any(), "p-1", 9).Return(entities.Product{ID: "p-1", Inventory: 9}, nil)
		products.EXPECT().GetByID(gomock.Any(), "p-2").Return(entities.Product{}, errors.New("db"))

		err := uc.Reconcile(context.Background(), []entities.OrderItem{
			{ProductID: "p-1", Quantity: 1},
			{ProductID: "p-2", Quantity: 1},
		}, false)
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

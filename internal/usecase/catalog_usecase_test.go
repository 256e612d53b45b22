package usecase

import (
	"context"
	"testing"
	"time"

	"acme_shop/internal/domain/entities"
	mock_interfaces "acme_shop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_ListGrouped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	categories := mock_interfaces.NewMockICategoryRepository(ctrl)
	uc := NewCatalogUseCase(products, categories)

	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	products.EXPECT().List(gomock.Any()).Return([]entities.Product{
		{ID: "p-1", CategoryID: "shoes", CreatedAt: older},
		{ID: "p-2", CategoryID: "shoes", CreatedAt: newer},
		{ID: "p-3", CategoryID: "shirts", CreatedAt: older},
		{ID: "p-4", CategoryID: "deleted-cat", CreatedAt: older},
	}, nil)
	categories.EXPECT().List(gomock.Any()).Return([]entities.Category{
		{ID: "shoes", Name: "Shoes", Priority: 10},
		{ID: "shirts", Name: "Shirts", Priority: 5},
		{ID: "empty", Name: "Empty", Priority: 99},
	}, nil)

	groups, err := uc.ListGrouped(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	// Priority order, orphaned products last.
	if groups[0].Category.ID != "shoes" || groups[1].Category.ID != "shirts" {
		t.Fatalf("unexpected group order: %s, %s", groups[0].Category.ID, groups[1].Category.ID)
	}
	if groups[2].Category.Name != "Uncategorized" || groups[2].Category.Priority != -1 {
		t.Fatalf("unexpected fallback group: %+v", groups[2].Category)
	}
	if len(groups[2].Products) != 1 || groups[2].Products[0].ID != "p-4" {
		t.Fatalf("unexpected fallback products: %+v", groups[2].Products)
	}

	// Products newest first inside a group.
	if groups[0].Products[0].ID != "p-2" || groups[0].Products[1].ID != "p-1" {
		t.Fatalf("unexpected product order: %+v", groups[0].Products)
	}
}

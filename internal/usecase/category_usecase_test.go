package usecase

import (
	"context"
	"errors"
	"testing"

	"acme_shop/internal/domain/entities"
	mock_interfaces "acme_shop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Shoes", "shoes"},
		{"spaces to dashes", "Summer Collection", "summer-collection"},
		{"punctuation stripped", "Kids' T-Shirts!", "kids-t-shirts"},
		{"collapses whitespace", "  New   Arrivals  ", "new-arrivals"},
		{"already a slug", "winter-sale", "winter-sale"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCategoryUseCase_Create(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewCategoryUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Category{Name: "  "})
		if !errors.Is(err, ErrInvalidCategoryInput) {
			t.Fatalf("expected ErrInvalidCategoryInput, got %v", err)
		}
	})

	t.Run("slug derived from name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewCategoryUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Category) (entities.Category, error) {
				if c.Slug != "summer-collection" {
					t.Fatalf("unexpected slug: %q", c.Slug)
				}
				if c.ID == "" {
					t.Fatal("expected generated id")
				}
				return c, nil
			})

		if _, err := uc.Create(context.Background(), entities.Category{Name: "Summer Collection"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("explicit slug preserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewCategoryUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Category) (entities.Category, error) {
				if c.Slug != "custom" {
					t.Fatalf("unexpected slug: %q", c.Slug)
				}
				return c, nil
			})

		if _, err := uc.Create(context.Background(), entities.Category{Name: "Anything", Slug: "custom"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCategoryUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICategoryRepository(ctrl)
	uc := NewCategoryUseCase(repo, nil)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Category{
		{ID: "c", Name: "Charlie", Priority: 1},
		{ID: "a", Name: "Alpha", Priority: 5},
		{ID: "b", Name: "Bravo", Priority: 5},
	}, nil)

	categories, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{categories[0].ID, categories[1].ID, categories[2].ID}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: %v", got)
		}
	}
}

func TestCategoryUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICategoryRepository(ctrl)
	uc := NewCategoryUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Category{}, nil)

	_, err := uc.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

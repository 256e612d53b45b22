package usecase

import (
	"context"
	"sort"

	"acme_shop/internal/domain/entities"
	"acme_shop/internal/usecase/interfaces"
)

// CategoryProducts is one storefront catalog section: a category and its
// products, newest first.
type CategoryProducts struct {
	Category entities.Category  `json:"category"`
	Products []entities.Product `json:"products"`
}

// ICatalogUseCase builds the storefront product listing, grouped by category
// and ordered by category priority.

type ICatalogUseCase interface {
	ListGrouped(ctx context.Context) ([]CategoryProducts, error)
}

type CatalogUseCase struct {
	products   interfaces.IProductRepository
	categories interfaces.ICategoryRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(products interfaces.IProductRepository, categories interfaces.ICategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

// ListGrouped groups products under their categories and sorts the groups by
// priority descending (name ascending on ties). Products whose category no
// longer exists are collected under a synthetic "Uncategorized" group with
// priority -1 so they sort after every real category. Empty categories are
// omitted.
func (u *CatalogUseCase) ListGrouped(ctx context.Context) ([]CategoryProducts, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := u.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]entities.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	grouped := make(map[string][]entities.Product)
	for _, p := range products {
		key := p.CategoryID
		if _, ok := byID[key]; !ok {
			key = "uncategorized"
		}
		grouped[key] = append(grouped[key], p)
	}

	out := make([]CategoryProducts, 0, len(grouped))
	for key, list := range grouped {
		category, ok := byID[key]
		if !ok {
			category = entities.Category{
				ID:       "uncategorized",
				Name:     "Uncategorized",
				Slug:     "uncategorized",
				Priority: -1,
			}
		}
		sort.Slice(list, func(i, j int) bool {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		})
		out = append(out, CategoryProducts{Category: category, Products: list})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Category.Priority != out[j].Category.Priority {
			return out[i].Category.Priority > out[j].Category.Priority
		}
		return out[i].Category.Name < out[j].Category.Name
	})
	return out, nil
}

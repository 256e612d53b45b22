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
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductInput = errors.New("invalid product input")
)

const productCacheTTL = 5 * time.Minute

// IProductUseCase exposes admin product CRUD plus the cached single-product
// lookup used by the storefront.

type IProductUseCase interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductUseCase struct {
	repo   interfaces.IProductRepository
	cache  interfaces.IProductCache
	logger *zap.Logger
}

var _ IProductUseCase = (*ProductUseCase)(nil)

// NewProductUseCase builds the product use case. cache may be nil when no
// cache backend is configured; lookups then always hit the repository.
func NewProductUseCase(repo interfaces.IProductRepository, cache interfaces.IProductCache, logger *zap.Logger) *ProductUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductUseCase{repo: repo, cache: cache, logger: logger}
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.Price <= 0 || strings.TrimSpace(p.CategoryID) == "" {
		return entities.Product{}, ErrInvalidProductInput
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	if u.cache != nil {
		if p, ok := u.cache.Get(ctx, id); ok {
			return p, nil
		}
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	if u.cache != nil {
		u.cache.Set(ctx, p, productCacheTTL)
	}
	return p, nil
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	products, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (u *ProductUseCase) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.Price <= 0 {
		return entities.Product{}, ErrInvalidProductInput
	}

	existing, err := u.repo.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	if u.cache != nil {
		u.cache.Set(ctx, updated, productCacheTTL)
	}
	return updated, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}

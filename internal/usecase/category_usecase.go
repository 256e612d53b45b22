package usecase

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"acme_shop/internal/domain/entities"
	"acme_shop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrInvalidCategoryID    = errors.New("invalid category id")
	ErrInvalidCategoryInput = errors.New("invalid category input")
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`\s+`)
)

// Slugify derives a URL slug from a category name: lowercase, punctuation
// stripped, whitespace collapsed into dashes.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ICategoryUseCase exposes category CRUD. Listing is ordered the way the
// storefront renders it: priority descending, ties by name ascending.

type ICategoryUseCase interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	GetByID(ctx context.Context, id string) (entities.Category, error)
	List(ctx context.Context) ([]entities.Category, error)
	Update(ctx context.Context, c entities.Category) (entities.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryUseCase struct {
	repo   interfaces.ICategoryRepository
	logger *zap.Logger
}

var _ ICategoryUseCase = (*CategoryUseCase)(nil)

func NewCategoryUseCase(repo interfaces.ICategoryRepository, logger *zap.Logger) *CategoryUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryUseCase{repo: repo, logger: logger}
}

func (u *CategoryUseCase) Create(ctx context.Context, c entities.Category) (entities.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Category{}, ErrInvalidCategoryInput
	}
	if strings.TrimSpace(c.Slug) == "" {
		c.Slug = Slugify(c.Name)
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *CategoryUseCase) GetByID(ctx context.Context, id string) (entities.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Category{}, ErrInvalidCategoryID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	if c.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}
	return c, nil
}

func (u *CategoryUseCase) List(ctx context.Context) ([]entities.Category, error) {
	categories, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	SortCategories(categories)
	return categories, nil
}

// SortCategories orders categories by priority descending, name ascending.
func SortCategories(categories []entities.Category) {
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Priority != categories[j].Priority {
			return categories[i].Priority > categories[j].Priority
		}
		return categories[i].Name < categories[j].Name
	})
}

func (u *CategoryUseCase) Update(ctx context.Context, c entities.Category) (entities.Category, error) {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		return entities.Category{}, ErrInvalidCategoryID
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Category{}, ErrInvalidCategoryInput
	}
	if strings.TrimSpace(c.Slug) == "" {
		c.Slug = Slugify(c.Name)
	}

	existing, err := u.repo.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Category{}, err
	}
	if existing.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, c)
}

func (u *CategoryUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCategoryID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.logger.Info("category deleted", zap.String("category_id", id))
	return nil
}

package request

import "acme_shop/internal/domain/entities"

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

func (r CategoryRequest) ToEntity() entities.Category {
	return entities.Category{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Priority:    r.Priority,
	}
}

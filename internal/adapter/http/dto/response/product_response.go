package response

import (
	"time"

	"acme_shop/internal/domain/entities"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	SalePrice   *float64  `json:"sale_price,omitempty"`
	OnSale      bool      `json:"on_sale"`
	CategoryID  string    `json:"category_id"`
	Inventory   int       `json:"inventory"`
	Images      []string  `json:"images"`
	Sizes       []string  `json:"sizes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		SalePrice:   p.SalePrice,
		OnSale:      p.OnSale,
		CategoryID:  p.CategoryID,
		Inventory:   p.Inventory,
		Images:      p.Images,
		Sizes:       p.Sizes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProducts(ps []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}

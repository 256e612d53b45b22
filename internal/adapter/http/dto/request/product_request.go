package request

import "acme_shop/internal/domain/entities"

type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	SalePrice   *float64 `json:"sale_price"`
	OnSale      bool     `json:"on_sale"`
	CategoryID  string   `json:"category_id" binding:"required"`
	Inventory   int      `json:"inventory"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes"`
}

func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		SalePrice:   r.SalePrice,
		OnSale:      r.OnSale,
		CategoryID:  r.CategoryID,
		Inventory:   r.Inventory,
		Images:      r.Images,
		Sizes:       r.Sizes,
	}
}

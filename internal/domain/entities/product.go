package entities

import "time"

// Product is a catalog product persisted in the products table.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Inventory is a plain counter. It is mutated by inventory reconciliation when
// orders cross the delivered boundary and by direct admin edits; decrements
// are not floored at zero.
type Product struct {
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

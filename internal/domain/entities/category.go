package entities

import "time"

// Category groups products in the storefront.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Priority drives storefront ordering: higher priority categories are listed
// first, ties broken by name.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

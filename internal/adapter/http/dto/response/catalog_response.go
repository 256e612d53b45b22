package response

import "acme_shop/internal/usecase"

// CatalogSectionResponse is one storefront section: a category with its
// products, already ordered for rendering.
type CatalogSectionResponse struct {
	Category CategoryResponse  `json:"category"`
	Products []ProductResponse `json:"products"`
}

func FromCatalog(groups []usecase.CategoryProducts) []CatalogSectionResponse {
	out := make([]CatalogSectionResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, CatalogSectionResponse{
			Category: FromCategory(g.Category),
			Products: FromProducts(g.Products),
		})
	}
	return out
}

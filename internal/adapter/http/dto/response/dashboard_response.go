package response

import "acme_shop/internal/usecase"

type DashboardStatsResponse struct {
	TotalSales    float64 `json:"total_sales"`
	TotalOrders   int     `json:"total_orders"`
	TotalProducts int     `json:"total_products"`
	GrowthRate    float64 `json:"growth_rate"`
}

func FromDashboardStats(s usecase.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalSales:    s.TotalSales,
		TotalOrders:   s.TotalOrders,
		TotalProducts: s.TotalProducts,
		GrowthRate:    s.GrowthRate,
	}
}

type UploadResponse struct {
	URL string `json:"url"`
}

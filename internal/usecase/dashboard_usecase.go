package usecase

import (
	"context"
	"math"
	"time"

	"acme_shop/internal/usecase/interfaces"
)

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalSales    float64 `json:"total_sales"`
	TotalOrders   int     `json:"total_orders"`
	TotalProducts int     `json:"total_products"`
	GrowthRate    float64 `json:"growth_rate"`
}

type IDashboardUseCase interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

type DashboardUseCase struct {
	orders   interfaces.IOrderRepository
	products interfaces.IProductRepository

	now func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(orders interfaces.IOrderRepository, products interfaces.IProductRepository) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, products: products, now: time.Now}
}

// Stats aggregates totals over all orders plus a month-over-month growth
// rate. Growth compares the calendar month of "now" against the previous
// calendar month of the same year; when the previous month had no sales the
// rate is reported as 100. The result is rounded to one decimal.
func (u *DashboardUseCase) Stats(ctx context.Context) (DashboardStats, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	products, err := u.products.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	now := u.now().UTC()
	currentMonth, currentYear := now.Month(), now.Year()

	var totalSales, currentMonthSales, previousMonthSales float64
	for _, o := range orders {
		totalSales += o.TotalAmount

		created := o.CreatedAt.UTC()
		if created.Year() != currentYear {
			continue
		}
		switch created.Month() {
		case currentMonth:
			currentMonthSales += o.TotalAmount
		case currentMonth - 1:
			previousMonthSales += o.TotalAmount
		}
	}

	growth := 100.0
	if previousMonthSales != 0 {
		growth = (currentMonthSales - previousMonthSales) / previousMonthSales * 100
	}

	return DashboardStats{
		TotalSales:    totalSales,
		TotalOrders:   len(orders),
		TotalProducts: len(products),
		GrowthRate:    math.Round(growth*10) / 10,
	}, nil
}

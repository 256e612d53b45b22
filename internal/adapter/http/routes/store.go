package routes

import (
	"acme_shop/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addStoreRoutes(rg *gin.RouterGroup, deps *dependencies) {
	catalogHandler := handlers.NewCatalogHandler(deps.catalogUseCase)
	productHandler := handlers.NewProductHandler(deps.productUseCase)
	categoryHandler := handlers.NewCategoryHandler(deps.categoryUseCase)
	orderHandler := handlers.NewOrderHandler(deps.orderUseCase)
	cronHandler := handlers.NewCronHandler(deps.cronUseCase)

	rg.GET(PathProducts, catalogHandler.ListGrouped)
	rg.GET(PathProducts+"/:id", productHandler.GetByID)
	rg.GET(PathCategories, categoryHandler.List)

	rg.POST(PathOrders, orderHandler.Checkout)

	rg.GET(PathCron+"/ping", cronHandler.Ping)
}

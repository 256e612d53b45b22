package routes

import (
	"acme_shop/internal/adapter/http/handlers"
	"acme_shop/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth       = "/auth"
	PathProducts   = "/products"
	PathCategories = "/categories"
	PathOrders     = "/orders"
	PathDashboard  = "/dashboard"
	PathCron       = "/cron"
)

func addAdminRoutes(rg *gin.RouterGroup, deps *dependencies) {
	authHandler := handlers.NewAuthHandler(deps.authUseCase)
	productHandler := handlers.NewProductHandler(deps.productUseCase)
	categoryHandler := handlers.NewCategoryHandler(deps.categoryUseCase)
	orderHandler := handlers.NewOrderHandler(deps.orderUseCase)
	dashboardHandler := handlers.NewDashboardHandler(deps.dashboardUseCase)
	cronHandler := handlers.NewCronHandler(deps.cronUseCase)
	uploadHandler := handlers.NewUploadHandler(deps.fileStorage)

	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/check-verification", authHandler.CheckVerification)
		auth.GET("/verify/:token", authHandler.VerifyByToken)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	// The cron ping stays open so the external scheduler can reach it.
	cron := rg.Group(PathCron)
	{
		cron.GET("/ping", cronHandler.Ping)
	}

	authed := rg.Group("", middleware.RequireAuth(deps.tokenKey))
	{
		products := authed.Group(PathProducts)
		{
			products.POST("", productHandler.Create)
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.GetByID)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		categories := authed.Group(PathCategories)
		{
			categories.POST("", categoryHandler.Create)
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.GetByID)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		orders := authed.Group(PathOrders)
		{
			orders.GET("", orderHandler.List)
			orders.PATCH("/:id", orderHandler.UpdateStatus)
		}

		authed.GET(PathDashboard+"/stats", dashboardHandler.Stats)
		authed.GET(PathCron+"/logs", cronHandler.Logs)
		authed.POST("/upload", uploadHandler.Upload)
	}
}

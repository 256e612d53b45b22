package main

import (
	_ "acme_shop/docs"
	"acme_shop/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Shop Admin API
// @version         1.0
// @description     Admin dashboard API (auth, products, categories, orders, dashboard, cron) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.RunAdmin()
}

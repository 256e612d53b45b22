package main

import (
	_ "acme_shop/docs"
	"acme_shop/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Shop Storefront API
// @version         1.0
// @description     Public storefront API (catalog, checkout) backed by DynamoDB.

// @host localhost:8081

// @BasePath  /v1

func main() {
	routes.RunStore()
}

package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "acme_shop/docs" // This will be auto-generated
	"acme_shop/internal/adapter/http/middleware"
	repository2 "acme_shop/internal/adapter/persistence/repository"
	"acme_shop/internal/infrastructure/cache"
	"acme_shop/internal/infrastructure/database"
	"acme_shop/internal/infrastructure/mail"
	"acme_shop/internal/infrastructure/storage"
	"acme_shop/internal/ratelimit"
	"acme_shop/internal/usecase"
	"acme_shop/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	AdminPort = 8080
	StorePort = 8081
)

// dependencies is the shared wiring for both servers. The two binaries hit
// the same tables; they differ only in which routes they mount.
type dependencies struct {
	logger *zap.Logger

	authUseCase      usecase.IAuthUseCase
	productUseCase   usecase.IProductUseCase
	categoryUseCase  usecase.ICategoryUseCase
	orderUseCase     usecase.IOrderUseCase
	catalogUseCase   usecase.ICatalogUseCase
	dashboardUseCase usecase.IDashboardUseCase
	cronUseCase      usecase.ICronUseCase

	fileStorage interfaces.IFileStorage
	tokenKey    []byte
}

func buildDependencies() *dependencies {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	userRepo := repository2.NewUserDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	categoryRepo := repository2.NewCategoryDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	resetRepo := repository2.NewPasswordResetDynamoRepository(ddb)
	cronLogRepo := repository2.NewCronLogDynamoRepository(ddb)

	var mailer interfaces.IMailSender
	if m := mail.NewSMTPMailerFromEnv(); m != nil {
		mailer = m
	} else {
		logger.Warn("SMTP not configured, transactional email disabled")
	}

	var productCache interfaces.IProductCache
	if pc := cache.NewRedisProductCacheFromEnv(logger); pc != nil {
		productCache = pc
	} else {
		logger.Warn("Redis not configured, product cache disabled")
	}

	var fileStorage interfaces.IFileStorage
	if s3, err := storage.NewS3Uploader(context.Background()); err != nil {
		logger.Warn("S3 not configured, image upload disabled", zap.Error(err))
	} else {
		fileStorage = s3
	}

	tokenKey := []byte(getenvDefault("JWT_SECRET", "dev-secret-do-not-use"))
	baseURL := getenvDefault("APP_BASE_URL", "http://localhost:8080")
	limiter := ratelimit.NewFixedWindow(ratelimit.DefaultConfig())

	inventory := usecase.NewInventoryUseCase(productRepo, logger)

	return &dependencies{
		logger:           logger,
		authUseCase:      usecase.NewAuthUseCase(userRepo, resetRepo, mailer, limiter, tokenKey, baseURL, logger),
		productUseCase:   usecase.NewProductUseCase(productRepo, productCache, logger),
		categoryUseCase:  usecase.NewCategoryUseCase(categoryRepo, logger),
		orderUseCase:     usecase.NewOrderUseCase(orderRepo, inventory, mailer, logger),
		catalogUseCase:   usecase.NewCatalogUseCase(productRepo, categoryRepo),
		dashboardUseCase: usecase.NewDashboardUseCase(orderRepo, productRepo),
		cronUseCase:      usecase.NewCronUseCase(userRepo, cronLogRepo, logger),
		fileStorage:      fileStorage,
		tokenKey:         tokenKey,
	}
}

func newEngine(logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Metrics())

	router.GET("/metrics", middleware.MetricsHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// RunAdmin starts the admin dashboard API.
func RunAdmin() {
	deps := buildDependencies()
	defer deps.logger.Sync()

	router := newEngine(deps.logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAdminRoutes(v1, deps)

	if err := router.Run(":" + strconv.Itoa(AdminPort)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// RunStore starts the storefront API.
func RunStore() {
	deps := buildDependencies()
	defer deps.logger.Sync()

	router := newEngine(deps.logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStoreRoutes(v1, deps)

	if err := router.Run(":" + strconv.Itoa(StorePort)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

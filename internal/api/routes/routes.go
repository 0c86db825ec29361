package routes

import (
	"bilemo-backend/internal/api/handlers"
	"bilemo-backend/internal/api/middleware"
	"bilemo-backend/internal/config"
	"bilemo-backend/internal/repository"
	"bilemo-backend/internal/security"
	"bilemo-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	enterpriseRepo := repository.NewEnterpriseRepository(db)
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Initialize collaborators and services
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	enterpriseService := service.NewEnterpriseService(enterpriseRepo, validator)
	userService := service.NewUserService(userRepo, enterpriseRepo, hasher, validator)
	productService := service.NewProductService(productRepo, enterpriseRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	enterpriseHandler := handlers.NewEnterpriseHandler(enterpriseService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Enterprise routes
	router.GET("/enterprises", enterpriseHandler.ListEnterprises)
	router.POST("/enterprise", enterpriseHandler.CreateEnterprise)
	router.GET("/enterprise/:uuid", enterpriseHandler.GetEnterprise)
	router.PUT("/enterprise/:uuid", enterpriseHandler.UpdateEnterprise)
	router.DELETE("/enterprise/:uuid", enterpriseHandler.DeleteEnterprise)

	// User routes, tenant-scoped by enterprise UUID
	router.GET("/users/:uuid", userHandler.ListUsers)
	router.POST("/users", userHandler.CreateUser)
	router.GET("/user/:uuid/:userId", userHandler.GetUser)
	router.PUT("/user/:uuid/:userId", userHandler.UpdateUser)
	router.DELETE("/user/:uuid/:userId", userHandler.DeleteUser)

	// Product routes, same tenant-scoping pattern
	router.GET("/products/:uuid", productHandler.ListProducts)
	router.POST("/products", productHandler.CreateProduct)
	router.GET("/product/:uuid/:productId", productHandler.GetProduct)
	router.PUT("/product/:uuid/:productId", productHandler.UpdateProduct)
	router.DELETE("/product/:uuid/:productId", productHandler.DeleteProduct)

	return router
}

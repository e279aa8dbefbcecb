package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/mi-ecommerce/marketplace-api/docs"
	"github.com/mi-ecommerce/marketplace-api/internal/api/handler"
	"github.com/mi-ecommerce/marketplace-api/internal/api/middleware"
	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
	"github.com/mi-ecommerce/marketplace-api/internal/core/service"
	mongodb "github.com/mi-ecommerce/marketplace-api/internal/infrastructure/db/mongo"
)

// RouterConfig carries the settings the router needs beyond its dependencies.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	cartRepo := mongodb.NewCartRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	pictureRepo := mongodb.NewPictureRepository(db)

	userService := service.NewUserService(userRepo, cartRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, pictureRepo, log)
	cartService := service.NewCartService(cartRepo, productRepo, log)

	userHandler := handler.NewUserHandler(userService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)

	auth := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/users", userHandler.Create)
	e.POST("/users/login", userHandler.Login)

	// --- Account routes (self-or-admin checks live in the handlers) ---
	e.GET("/users", userHandler.List, auth, adminOnly)
	e.GET("/users/:id", userHandler.Get, auth)
	e.PUT("/users/:id", userHandler.Update, auth)
	e.DELETE("/users/:id", userHandler.Delete, auth)

	// --- Catalog routes: reads for any authenticated user, writes admin-only ---
	e.GET("/products", catalogHandler.ListProducts, auth)
	e.GET("/products/mostwanted", catalogHandler.ListMostWanted, auth)
	e.GET("/products/:id", catalogHandler.GetProduct, auth)
	e.GET("/products/:id/pictures", catalogHandler.ListPictures, auth)
	e.POST("/products", catalogHandler.CreateProduct, auth, adminOnly)
	e.PUT("/products/:id", catalogHandler.UpdateProduct, auth, adminOnly)
	e.DELETE("/products/:id", catalogHandler.DeleteProduct, auth, adminOnly)

	e.GET("/category", catalogHandler.ListCategories, auth)
	e.GET("/category/:id", catalogHandler.GetCategory, auth)
	e.POST("/category", catalogHandler.CreateCategory, auth, adminOnly)
	e.PUT("/category/:id", catalogHandler.UpdateCategory, auth, adminOnly)
	e.DELETE("/category/:id", catalogHandler.DeleteCategory, auth, adminOnly)

	e.GET("/pictures/:id", catalogHandler.GetPicture, auth)
	e.POST("/pictures", catalogHandler.CreatePicture, auth, adminOnly)
	e.PUT("/pictures/:id", catalogHandler.UpdatePicture, auth, adminOnly)
	e.DELETE("/pictures/:id", catalogHandler.DeletePicture, auth, adminOnly)

	// --- Cart routes ---
	e.GET("/carts/:id", cartHandler.Get, auth)
	e.PUT("/carts/:id", cartHandler.Update, auth)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/webshop-io/shop-api/docs"
	"github.com/webshop-io/shop-api/internal/api/handler"
	"github.com/webshop-io/shop-api/internal/api/middleware"
	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/service"
	mongodb "github.com/webshop-io/shop-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	jwtSecret string,
	dispatcher handler.OrderEventDispatcher,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("shop"))

	// --- Dependencies ---
	counters := mongodb.NewCounters(db)
	adminRepo := mongodb.NewAdministratorRepository(db, counters)
	userRepo := mongodb.NewUserRepository(db, counters)
	articleRepo := mongodb.NewArticleRepository(db, counters)
	categoryRepo := mongodb.NewCategoryRepository(db, counters)
	cartRepo := mongodb.NewCartRepository(db, counters)
	orderRepo := mongodb.NewOrderRepository(db, counters)

	tokenService := service.NewTokenService(jwtSecret)
	directory := service.NewAccountDirectory(adminRepo, userRepo)
	authService := service.NewAuthService(adminRepo, userRepo, tokenService, log)
	catalogService := service.NewCatalogService(articleRepo, categoryRepo, log)
	cartService := service.NewCartService(cartRepo, orderRepo, articleRepo, log)
	orderService := service.NewOrderService(orderRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	articleHandler := handler.NewArticleHandler(catalogService)
	categoryHandler := handler.NewCategoryHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService, dispatcher)
	adminHandler := handler.NewAdministratorHandler(adminRepo, service.HashPassword)

	authenticated := middleware.Auth(tokenService, directory)
	adminOnly := middleware.RBAC(domain.RoleAdministrator)
	userOnly := middleware.RBAC(domain.RoleUser)
	anyRole := middleware.RBAC(domain.RoleAdministrator, domain.RoleUser)

	// --- Auth routes (public) ---
	e.POST("/auth/administrator/login", authHandler.AdministratorLogin)
	e.POST("/auth/user/login", authHandler.UserLogin)
	e.POST("/auth/user/register", authHandler.UserRegister)

	// --- Protected API ---
	g := e.Group("/api", authenticated)

	g.POST("/article", articleHandler.Create, adminOnly)
	g.PATCH("/article/:id", articleHandler.Edit, adminOnly)
	g.GET("/article/:id", articleHandler.Get, anyRole)
	g.POST("/article/search", articleHandler.Search, anyRole)

	g.POST("/category", categoryHandler.Create, adminOnly)
	g.GET("/category", categoryHandler.List, anyRole)
	g.GET("/category/:id", categoryHandler.Get, anyRole)

	g.GET("/user/cart", cartHandler.Get, userOnly)
	g.PATCH("/user/cart", cartHandler.EditArticle, userOnly)
	g.POST("/user/cart/addArticle", cartHandler.AddArticle, userOnly)
	g.POST("/user/cart/makeOrder", cartHandler.MakeOrder, userOnly)
	g.GET("/user/cart/orders", cartHandler.ListOrders, userOnly)

	g.GET("/order", orderHandler.List, adminOnly)
	g.GET("/order/:id", orderHandler.Get, adminOnly)
	g.PATCH("/order/:id", orderHandler.ChangeStatus, adminOnly)
	g.POST("/order/events", orderHandler.ReceiveEvents, adminOnly)

	g.GET("/administrator", adminHandler.List, adminOnly)
	g.GET("/administrator/:id", adminHandler.Get, adminOnly)
	g.POST("/administrator", adminHandler.Add, adminOnly)
	g.PATCH("/administrator/:id", adminHandler.Edit, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

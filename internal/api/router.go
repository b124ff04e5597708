package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/neemaflex/platform-api/internal/api/handler"
	"github.com/neemaflex/platform-api/internal/api/middleware"
	"github.com/neemaflex/platform-api/internal/core/domain"
	"github.com/neemaflex/platform-api/internal/core/service"
	mongodb "github.com/neemaflex/platform-api/internal/infrastructure/db/mongo"
	redisdb "github.com/neemaflex/platform-api/internal/infrastructure/db/redis"
)

// Options carries the router's external dependencies.
type Options struct {
	DB             *mongo.Database
	Redis          *redis.Client
	JWTSecret      string
	AccessTokenTTL time.Duration
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// allow-all CORS: reference behavior, acceptable only outside production
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("neemaflex"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(opts.DB)
	providerRepo := mongodb.NewProviderRepository(opts.DB)
	addressRepo := mongodb.NewAddressRepository(opts.DB)

	tokenService := service.NewTokenService(opts.JWTSecret, opts.AccessTokenTTL)
	throttle := redisdb.NewLoginThrottle(opts.Redis)
	authService := service.NewAuthService(userRepo, tokenService, throttle, opts.Logger)
	userService := service.NewUserService(userRepo, opts.Logger)
	providerService := service.NewProviderService(providerRepo, opts.Logger)
	addressService := service.NewAddressService(addressRepo, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	providerHandler := handler.NewProviderHandler(providerService)
	addressHandler := handler.NewAddressHandler(addressService)
	adminHandler := handler.NewAdminHandler(userService, providerService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.DB, opts.Redis)

	authn := middleware.Auth(tokenService, userRepo)
	active := middleware.ActiveUser()

	api := e.Group("/api")

	// --- Auth routes (unauthenticated) ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)

	// --- Profile routes ---
	api.GET("/users/me", userHandler.Me, authn, active)
	api.PUT("/users/me", userHandler.UpdateMe, authn, active)

	// --- Service-provider routes ---
	api.POST("/service-providers", providerHandler.Create, authn, active)
	api.GET("/service-providers/me", providerHandler.Me, authn, active)

	// --- Address routes ---
	api.POST("/addresses", addressHandler.Create, authn, active)
	api.GET("/addresses", addressHandler.List, authn, active)

	// --- Admin routes ---
	admin := api.Group("/admin", authn, active,
		middleware.RequireRole("Admin access required", domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/service-providers", adminHandler.ListProviders)

	// --- Health probes (no auth required) ---
	api.GET("/health", healthHandler.Liveness)           // liveness - is the process alive?
	api.GET("/health/ready", readinessHandler.Readiness) // readiness - are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

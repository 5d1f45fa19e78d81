package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lendly/sharing-system/internal/api/handler"
	"github.com/lendly/sharing-system/internal/api/middleware"
	"github.com/lendly/sharing-system/internal/core/ports"
	"github.com/lendly/sharing-system/internal/core/service"
	mongodb "github.com/lendly/sharing-system/internal/infrastructure/db/mongo"
	redisdb "github.com/lendly/sharing-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// notifier receives booking lifecycle notices; cacheTTL bounds the Redis user
// cache entries.
func NewRouter(db *mongo.Database, rdb *redis.Client, notifier ports.Notifier, cacheTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("sharing"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	itemRepo := mongodb.NewItemRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)

	userCache := redisdb.NewUserCache(rdb, cacheTTL)

	userService := service.NewUserService(userRepo, userCache, log)
	itemService := service.NewItemService(itemRepo, bookingRepo, userRepo, commentRepo, requestRepo, log)
	bookingService := service.NewBookingService(bookingRepo, itemRepo, userRepo, notifier, log)
	requestService := service.NewRequestService(requestRepo, itemRepo, userRepo, log)

	userHandler := handler.NewUserHandler(userService)
	itemHandler := handler.NewItemHandler(itemService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	requestHandler := handler.NewRequestHandler(requestService)

	identity := middleware.Identity()

	// --- User directory (no sharer header) ---
	e.POST("/users", userHandler.Create)
	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.Get)
	e.PATCH("/users/:id", userHandler.Update)
	e.DELETE("/users/:id", userHandler.Delete)

	// --- Item catalog ---
	items := e.Group("/items", identity)
	items.POST("", itemHandler.Create)
	items.GET("", itemHandler.List)
	items.GET("/search", itemHandler.Search)
	items.GET("/:id", itemHandler.Get)
	items.PATCH("/:id", itemHandler.Update)
	items.DELETE("/:id", itemHandler.Delete)
	items.POST("/:id/comment", itemHandler.CreateComment)

	// --- Booking lifecycle ---
	bookings := e.Group("/bookings", identity)
	bookings.POST("", bookingHandler.Create)
	bookings.GET("", bookingHandler.ListByBooker)
	bookings.GET("/owner", bookingHandler.ListByOwner)
	bookings.GET("/:id", bookingHandler.Get)
	bookings.PATCH("/:id", bookingHandler.Confirm)

	// --- Item requests ---
	requests := e.Group("/requests", identity)
	requests.POST("", requestHandler.Create)
	requests.GET("", requestHandler.ListOwn)
	requests.GET("/all", requestHandler.ListAll)
	requests.GET("/:id", requestHandler.Get)

	// --- Health probes and metrics (no sharer header) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

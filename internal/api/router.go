package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bookinghub/booking-api/docs"
	"github.com/bookinghub/booking-api/internal/api/handler"
	"github.com/bookinghub/booking-api/internal/api/middleware"
	"github.com/bookinghub/booking-api/internal/core/domain"
	"github.com/bookinghub/booking-api/internal/core/service"
	mongorepo "github.com/bookinghub/booking-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/bookinghub/booking-api/internal/infrastructure/db/redis"
	"github.com/bookinghub/booking-api/internal/infrastructure/http/handlers"
	"github.com/bookinghub/booking-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, credentials *token.Service, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Dependencies ---
	identityRepo := mongorepo.NewIdentityRepository(db)
	serviceRepo := mongorepo.NewServiceRepository(db)
	bookingRepo := mongorepo.NewBookingRepository(db)
	reviewRepo := mongorepo.NewReviewRepository(db)
	throttle := redisinfra.NewLoginThrottle(rdb)

	authService := service.NewAuthService(identityRepo, credentials, throttle, log)
	catalogService := service.NewCatalogService(serviceRepo, log)
	bookingService := service.NewBookingService(bookingRepo, serviceRepo, identityRepo, log)
	reviewService := service.NewReviewService(reviewRepo, bookingRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	auth := middleware.Auth(credentials, identityRepo)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/admin-signup", authHandler.AdminSignup)
	e.POST("/auth/admin-login", authHandler.AdminLogin)
	e.GET("/me", authHandler.Me, auth)

	// --- Service catalog ---
	e.GET("/services", serviceHandler.List)
	e.POST("/services", serviceHandler.Create, auth, middleware.Require(domain.OpCreateService))

	// --- Bookings ---
	e.POST("/bookings", bookingHandler.Create, auth, middleware.Require(domain.OpCreateBooking))
	e.GET("/bookings", bookingHandler.List, auth)
	e.PATCH("/bookings/:id", bookingHandler.UpdateStatus, auth, middleware.Require(domain.OpUpdateBookingStatus))

	// --- Reviews ---
	e.GET("/reviews", reviewHandler.List, auth)
	e.POST("/reviews", reviewHandler.Create, auth, middleware.Require(domain.OpCreateReview))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

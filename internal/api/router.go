package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookhaven/bookstore-api/internal/api/handler"
	"github.com/bookhaven/bookstore-api/internal/api/middleware"
	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/service"
	"github.com/bookhaven/bookstore-api/internal/infrastructure/config"
	mongodb "github.com/bookhaven/bookstore-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bookhaven/bookstore-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit sink is constructed and started by the caller so its lifecycle
// outlives individual requests.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, audit service.AuditSink) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bookstore"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	bookRepo := mongodb.NewBookRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	limiter := redisdb.NewLoginLimiter(rdb)
	authService := service.NewAuthService(authRepo, tokenService, limiter, log)
	bookService := service.NewBookService(bookRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	bookHandler := handler.NewBookHandler(bookService)
	profileHandler := handler.NewProfileHandler()

	authenticated := middleware.Auth(tokenService, authRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleUser)

	// --- Auth routes ---
	v1 := e.Group("/v1")
	v1.POST("/auth/signup", authHandler.Signup)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/profile", profileHandler.Get, authenticated, anyRole)

	// --- Inventory routes ---
	// The list endpoint is public by default; PUBLIC_BOOK_LIST=false puts it
	// behind the full auth chain.
	if cfg.PublicBookList {
		v1.GET("/books", bookHandler.List)
	} else {
		v1.GET("/books", bookHandler.List, authenticated, anyRole)
	}
	v1.POST("/books", bookHandler.Create, authenticated, adminOnly)
	v1.GET("/books/:id", bookHandler.Get, authenticated, anyRole)
	v1.PUT("/books/:id", bookHandler.Update, authenticated, adminOnly)
	v1.DELETE("/books/:id", bookHandler.Delete, authenticated, adminOnly)
	v1.PATCH("/books/:id/stock", bookHandler.UpdateStock, authenticated, adminOnly)
	v1.PATCH("/books/:id/recommend", bookHandler.SetRecommended, authenticated, adminOnly)
	v1.DELETE("/books/:id/recommend", bookHandler.RemoveRecommendation, authenticated, adminOnly)
	v1.POST("/books/:id/feedback", bookHandler.AddFeedback, authenticated, anyRole)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

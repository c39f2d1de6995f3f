package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/talenthub/recruiting-api/docs"
	"github.com/talenthub/recruiting-api/internal/api/handler"
	"github.com/talenthub/recruiting-api/internal/api/middleware"
	"github.com/talenthub/recruiting-api/internal/core/domain"
	"github.com/talenthub/recruiting-api/internal/core/ports"
	"github.com/talenthub/recruiting-api/internal/core/service"
	"github.com/talenthub/recruiting-api/internal/infrastructure/config"
	mongodb "github.com/talenthub/recruiting-api/internal/infrastructure/db/mongo"
	redisdb "github.com/talenthub/recruiting-api/internal/infrastructure/db/redis"
	httphandlers "github.com/talenthub/recruiting-api/internal/infrastructure/http/handlers"
	"github.com/talenthub/recruiting-api/internal/pkg/password"
)

// Deps carries the externally owned resources the router wires together.
type Deps struct {
	MongoClient *mongo.Client
	DB          *mongo.Database
	Redis       *redis.Client
	Audit       ports.AuditSink
	Config      *config.Config
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("recruiting"))
	e.Use(middleware.RouteScope(middleware.DefaultPolicy(), deps.Config.JWTSecret))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.MongoClient, deps.DB)
	jobRepo := mongodb.NewJobRepository(deps.DB)
	skillRepo := mongodb.NewSkillRepository(deps.DB)
	skillCache := redisdb.NewSkillCache(deps.Redis)

	hasher := password.NewHasher(deps.Config.BcryptCost)
	authService := service.NewAuthService(userRepo, hasher, deps.Audit, deps.Config.JWTSecret, deps.Config.SessionTTL, deps.Logger)
	jobService := service.NewJobService(jobRepo, skillRepo, userRepo, skillCache, deps.Logger)
	skillCatalog := service.NewSkillCatalog(skillRepo, skillCache, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	skillHandler := handler.NewSkillHandler(skillCatalog)
	authMiddleware := middleware.Auth(deps.Config.JWTSecret)

	// --- Auth routes (public per the route scope policy) ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// --- HR routes ---
	hrGroup := e.Group("/api/hr", authMiddleware, middleware.RBAC(domain.RoleHR))
	hrGroup.POST("/jobs", jobHandler.CreateJob)
	hrGroup.GET("/jobs", jobHandler.ListJobs)

	// --- Shared authenticated routes ---
	e.GET("/api/skills", skillHandler.ListSkills, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

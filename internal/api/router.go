package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	_ "github.com/careerforge/resume-platform/docs"
	"github.com/careerforge/resume-platform/internal/api/handler"
	"github.com/careerforge/resume-platform/internal/api/middleware"
	"github.com/careerforge/resume-platform/internal/core/ports"
	"github.com/careerforge/resume-platform/internal/core/service"
	"github.com/careerforge/resume-platform/internal/infrastructure/config"
	mongorepo "github.com/careerforge/resume-platform/internal/infrastructure/db/mongo"
	redisrepo "github.com/careerforge/resume-platform/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	cfg *config.Config,
	log zerolog.Logger,
	db *mongo.Database,
	rdb *redis.Client,
	provider ports.AnalysisProvider,
	store ports.ObjectStore,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("resume_platform"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	resumeRepo := mongorepo.NewResumeRepository(db)
	jobRepo := mongorepo.NewJobRepository(db)
	appRepo := mongorepo.NewApplicationRepository(db)
	quota := redisrepo.NewQuotaKeeper(rdb, cfg.Gemini.DailyLimit)

	tokenTTL := time.Duration(cfg.JWT.ExpirationDays) * 24 * time.Hour
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Algorithm, tokenTTL)
	resumeService := service.NewResumeService(resumeRepo, store, log)
	jobService := service.NewJobService(jobRepo, log)
	appService := service.NewApplicationService(appRepo, jobRepo, resumeRepo, log)
	analysisService := service.NewAnalysisService(provider, quota, log)

	authHandler := handler.NewAuthHandler(authService)
	resumeHandler := handler.NewResumeHandler(resumeService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	jobHandler := handler.NewJobHandler(jobService)
	appHandler := handler.NewApplicationHandler(appService)
	templateHandler := handler.NewTemplateHandler()

	authRequired := middleware.Auth(cfg.JWT.Secret, cfg.JWT.Algorithm)
	loginLimiter := middleware.RateLimit(rate.Limit(5), 10)

	// --- Routes ---
	api := e.Group("/api")

	api.POST("/auth/signup", authHandler.Signup, loginLimiter)
	api.POST("/auth/login", authHandler.Login, loginLimiter)
	api.GET("/auth/me", authHandler.Me, authRequired)

	resumes := api.Group("/resumes", authRequired)
	resumes.POST("", resumeHandler.Create)
	resumes.POST("/upload", resumeHandler.Upload)
	resumes.GET("", resumeHandler.List)
	resumes.GET("/:id", resumeHandler.Get)
	resumes.DELETE("/:id", resumeHandler.Delete)
	resumes.POST("/analyze", analysisHandler.Analyze)
	resumes.POST("/match-job", analysisHandler.MatchJob)
	resumes.POST("/rewrite", analysisHandler.Rewrite)

	api.GET("/jobs", jobHandler.List)
	api.GET("/jobs/:id", jobHandler.Get)

	api.POST("/applications", appHandler.Create, authRequired)
	api.GET("/applications", appHandler.List, authRequired)

	api.GET("/templates", templateHandler.List)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

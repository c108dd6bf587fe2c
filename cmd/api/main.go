package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/careerforge/resume-platform/internal/api"
	"github.com/careerforge/resume-platform/internal/core/service"
	"github.com/careerforge/resume-platform/internal/infrastructure/config"
	mongorepo "github.com/careerforge/resume-platform/internal/infrastructure/db/mongo"
	redisrepo "github.com/careerforge/resume-platform/internal/infrastructure/db/redis"
	"github.com/careerforge/resume-platform/internal/infrastructure/llm"
	"github.com/careerforge/resume-platform/internal/infrastructure/storage"
	"github.com/careerforge/resume-platform/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           CareerForge Resume Platform API
// @version         1.0
// @description     Resume builder and job application backend with AI-assisted analysis.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional; real deployments inject environment directly.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		lg := logger.Get()
		lg.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "resume-platform",
	})

	// --- MongoDB ---
	mongoClient, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("disconnecting mongodb")
		}
	}()

	userRepo := mongorepo.NewUserRepository(db)
	resumeRepo := mongorepo.NewResumeRepository(db)
	jobRepo := mongorepo.NewJobRepository(db)
	appRepo := mongorepo.NewApplicationRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":        userRepo.EnsureIndexes,
		"resumes":      resumeRepo.EnsureIndexes,
		"jobs":         jobRepo.EnsureIndexes,
		"applications": appRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("ensuring indexes")
		}
	}

	if cfg.SeedJobs {
		if err := service.NewJobService(jobRepo, log).Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("seeding job catalog")
		}
	}

	// --- Redis ---
	rdb, err := redisrepo.Connect(ctx, redisrepo.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("closing redis")
		}
	}()

	// --- External providers ---
	provider, err := llm.NewGeminiProvider(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialising gemini provider")
	}

	store, err := storage.NewS3Store(ctx, storage.Config{
		Endpoint:  cfg.S3.Endpoint,
		Region:    cfg.S3.Region,
		Bucket:    cfg.S3.Bucket,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("initialising object store")
	}

	e := api.NewRouter(cfg, log, db, rdb, provider, store)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CORSOrigins is a comma-separated list of allowed origins. "*" allows all.
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`

	JWT    JWTConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Gemini GeminiConfig
	S3     S3Config

	// SeedJobs controls whether the sample job catalog is inserted at startup
	// when the jobs collection is empty.
	SeedJobs bool `env:"SEED_JOBS, default=true"`
}

type JWTConfig struct {
	Secret         string `env:"JWT_SECRET"`
	Algorithm      string `env:"JWT_ALGORITHM,       default=HS256"`
	ExpirationDays int    `env:"JWT_EXPIRATION_DAYS, default=30"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=resume_platform"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL, default=gemini-2.5-flash"`
	// DailyLimit caps AI calls per user per day. 0 disables the quota.
	DailyLimit int `env:"AI_DAILY_LIMIT, default=50"`
}

type S3Config struct {
	// Endpoint overrides the AWS endpoint for R2-style providers. Empty uses
	// the standard AWS resolution.
	Endpoint  string `env:"S3_ENDPOINT"`
	Region    string `env:"S3_REGION, default=auto"`
	Bucket    string `env:"S3_BUCKET, default=resume-files"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

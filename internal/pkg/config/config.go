package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Storage   StorageConfig
	Extractor ExtractorConfig
	Auth      AuthConfig
	Cleanup   CleanupConfig
	Env       string
}

type ServerConfig struct {
	Host       string
	Port       string
	BodyLimit  int64 // bytes
	CORSOrigin string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// StorageConfig points at an S3-compatible bucket (Cloudflare R2 in
// production). PublicBaseURL is the CDN host the bucket is served from.
type StorageConfig struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

type ExtractorConfig struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
}

type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
}

type CleanupConfig struct {
	// Cron spec for the orphaned-object sweep. Empty disables it.
	Schedule string
	// Objects younger than this are never swept, so an in-flight ingest
	// cannot lose its freshly uploaded blob.
	MinAge time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:       getEnv("SERVER_HOST", "0.0.0.0"),
			Port:       getEnv("SERVER_PORT", "3000"),
			BodyLimit:  getEnvAsInt64("SERVER_BODY_LIMIT", 100*1024*1024), // 100MB
			CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "budgie"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       int(getEnvAsInt64("REDIS_DB", 0)),
		},
		Storage: StorageConfig{
			Endpoint:        getEnv("R2_ENDPOINT", ""),
			Region:          getEnv("R2_REGION", "auto"),
			Bucket:          getEnv("R2_BUCKET", "budgie"),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			PublicBaseURL:   getEnv("R2_PUBLIC_URL", ""),
		},
		Extractor: ExtractorConfig{
			Endpoint: getEnv("SHORT_VIDEO_API_URL", "https://proxy.layzz.cn/lyz/platAnalyse/"),
			Token:    getEnv("SHORT_VIDEO_TOKEN", ""),
			Timeout:  getEnvAsDuration("SHORT_VIDEO_TIMEOUT", 60*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("AUTH_JWT_SECRET", ""),
			SessionTTL: getEnvAsDuration("AUTH_SESSION_TTL", 7*24*time.Hour),
		},
		Cleanup: CleanupConfig{
			Schedule: getEnv("CLEANUP_SCHEDULE", "0 4 * * *"),
			MinAge:   getEnvAsDuration("CLEANUP_MIN_AGE", 24*time.Hour),
		},
		Env: getEnv("APP_ENV", "production"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

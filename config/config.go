package config

import (
	"log"
	"os"
	"strings"
	"time"

	"campusrent/constants"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// AppConfig is everything the process reads from the environment.
type AppConfig struct {
	Env             string
	StoreDriver     string
	DatabaseDSN     string
	RedisAddr       string
	RedisUser       string
	RedisPassword   string
	CloudinaryURL   string
	JWTSecret       string
	Port            string
	LogLevel        string
	LogDir          string
	ListingCacheTTL time.Duration
	CompletionCron  string
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using process environment: %v", err)
	}
}

func GetEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if any) and the environment into an AppConfig.
func Load() (*AppConfig, error) {
	LoadEnv()

	cfg := &AppConfig{
		Env:            GetEnv("ENV", "dev"),
		StoreDriver:    strings.ToLower(GetEnv("STORE_DRIVER", StoreDriverPostgres)),
		RedisAddr:      GetEnv("REDIS_ADDR", ""),
		RedisUser:      GetEnv("REDIS_USER", ""),
		RedisPassword:  GetEnv("REDIS_PASSWORD", ""),
		CloudinaryURL:  GetEnv("CLOUDINARY_URL", ""),
		JWTSecret:      GetEnv("JWT_SECRET", ""),
		Port:           GetEnv("PORT", "8083"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		LogDir:         GetEnv("LOG_DIR", ""),
		CompletionCron: GetEnv("COMPLETION_CRON", "0 0 * * *"),
	}

	ttl, err := time.ParseDuration(GetEnv("LISTING_CACHE_TTL", constants.DefaultCacheTTL.String()))
	if err != nil {
		return nil, err
	}
	cfg.ListingCacheTTL = ttl

	switch cfg.StoreDriver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		dsn, err := getDBConfigByEnv(cfg.Env)
		if err != nil {
			return nil, err
		}
		cfg.DatabaseDSN = dsn
	default:
		return nil, errUnknown("STORE_DRIVER", cfg.StoreDriver)
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is empty, every bearer token will be rejected")
	}
	return cfg, nil
}

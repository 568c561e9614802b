package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backend names accepted in STORAGE_TYPE
const (
	StorageTypeDatabase = "database"
	StorageTypeRedis    = "redis"
	StorageTypeMemory   = "memory"
)

// Config holds all server settings. It is read once at startup from the
// environment and treated as immutable afterwards.
type Config struct {
	// Application
	AppName   string
	Debug     bool
	SecretKey string // Reserved for session signing

	// HTTP server
	Host string
	Port int

	// Storage
	StorageType string
	DatabaseURL string
	RedisURL    string

	// CORS
	CORSAllowedOrigin string

	// Rate limiting, requests per client per minute (0 disables)
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Addr returns the host:port the server should listen on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present, so local development does not need
// exported variables.
func Load() (*Config, error) {
	_ = godotenv.Load() // ok if missing in prod

	cfg := &Config{
		AppName:            getEnvString("APP_NAME", "Catan Backend"),
		Debug:              getEnvBool("DEBUG", false),
		SecretKey:          getEnvString("SECRET_KEY", ""),
		Host:               getEnvString("HOST", "0.0.0.0"),
		Port:               getEnvInt("PORT", 8080),
		StorageType:        getEnvString("STORAGE_TYPE", StorageTypeDatabase),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		CORSAllowedOrigin:  getEnvString("CORS_ALLOWED_ORIGIN", "*"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 30),
	}

	switch cfg.StorageType {
	case StorageTypeDatabase:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL required when STORAGE_TYPE=%s", StorageTypeDatabase)
		}
	case StorageTypeRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL required when STORAGE_TYPE=%s", StorageTypeRedis)
		}
	case StorageTypeMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE_TYPE %q: must be %q, %q or %q",
			cfg.StorageType, StorageTypeDatabase, StorageTypeRedis, StorageTypeMemory)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

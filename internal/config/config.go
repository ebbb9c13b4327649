package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/inkwell-dev/inkwell/internal/logger"
)

type Config struct {
	Port     int
	Pg       Pg
	LogLevel string
	LogJSON  bool

	jwtSecret string
	jwtTTL    time.Duration
}

type Pg struct {
	Host     string
	Port     int
	User     string
	Password string
	Dbname   string
	SSLMode  string

	// URL overrides the discrete fields when set.
	URL string
}

// ConnStr builds the lib/pq connection string.
func (p Pg) ConnStr() string {
	if p.URL != "" {
		return p.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Dbname, p.SSLMode)
}

func (c *Config) JwtSecret() string {
	return c.jwtSecret
}

func (c *Config) JwtTTL() time.Duration {
	return c.jwtTTL
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// Load reads configuration from the environment. A .env file is picked up
// when present so local development doesn't need exported variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Log.Info(".env file not found, using environment variables")
	}

	cfg := &Config{
		Port: getEnvAsInt("PORT", 8080),
		Pg: Pg{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Dbname:   getEnv("DB_NAME", "inkwell"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			URL:      getEnv("DATABASE_URL", ""),
		},
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogJSON:   getEnvAsBool("LOG_JSON", false),
		jwtSecret: getEnv("JWT_SECRET", ""),
		jwtTTL:    getEnvAsDuration("JWT_TTL", 30*24*time.Hour),
	}

	if cfg.jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

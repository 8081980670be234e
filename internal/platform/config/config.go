// Package config loads application configuration from the environment.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable.
type Config struct {
	Port string // HTTP port to listen on

	DBUser        string
	DBPass        string
	DBHost        string
	DBPort        string
	DBName        string
	RunMigrations bool // run gorm AutoMigrate on startup

	RedisHost     string
	RedisPort     string
	RedisPassword string

	JWTSecret       string        // secret used to sign JWTs, required
	AccessTokenTTL  time.Duration // lifetime of access tokens
	RefreshTokenTTL time.Duration // lifetime of refresh tokens
}

// Load reads an optional .env file and then the process environment.
// JWT_SECRET has no default and its absence is an error.
func Load() (Config, error) {
	// A missing .env file is fine; variables may come from the environment.
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return Config{}, errors.New("JWT_SECRET is not set")
	}

	return Config{
		Port:            getenv("PORT", "8080"),
		DBUser:          os.Getenv("DB_USER"),
		DBPass:          os.Getenv("DB_PASSWORD"),
		DBHost:          getenv("DB_HOST", "127.0.0.1"),
		DBPort:          getenv("DB_PORT", "3306"),
		DBName:          os.Getenv("DB_NAME"),
		RunMigrations:   os.Getenv("RUN_MIGRATIONS") == "true",
		RedisHost:       os.Getenv("REDIS_HOST"),
		RedisPort:       getenv("REDIS_PORT", "6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       secret,
		AccessTokenTTL:  durationEnv("ACCESS_TOKEN_TTL", defaultAccessTokenTTL),
		RefreshTokenTTL: durationEnv("REFRESH_TOKEN_TTL", defaultRefreshTokenTTL),
	}, nil
}

// getenv returns the value of key, or fallback when unset or empty.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// durationEnv parses key as a time.Duration (e.g. "15m", "168h"), falling
// back when unset or malformed.
func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

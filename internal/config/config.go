package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/hbenomar/macstore-backend/internal/modules/pricing"
)

// Config carries the runtime settings read from the environment.
type Config struct {
	Port             string
	DatabaseURL      string
	RedisAddr        string
	JWTSecret        string
	ResellerDiscount float64
	AdminEmail       string
	AdminPassword    string
	SeedOnEmpty      bool
}

// Load reads .env when present, then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file, reading environment")
	}
	return Config{
		Port:             getenv("APP_PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		JWTSecret:        getenv("JWT_SECRET", "dev-secret-change-me"),
		ResellerDiscount: getfloat("RESELLER_DISCOUNT", pricing.DefaultResellerDiscount),
		AdminEmail:       getenv("ADMIN_EMAIL", "admin@macstore.ma"),
		AdminPassword:    getenv("ADMIN_PASSWORD", "changeme"),
		SeedOnEmpty:      getenv("SEED_ON_EMPTY", "true") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getfloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}

package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	AppName    = "delights-by-jummy"
	AppVersion = "2.1.0"
)

type Config struct {
	Host      string
	Port      string
	PublicDir string
	DataDir   string

	AdminPassword    string
	AllowAnyPassword bool
	JWTSecret        string

	MongoURI      string
	MongoDatabase string
	RedisURL      string
}

func Load() *Config {
	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	return &Config{
		Host:             getEnv("HOST", "0.0.0.0"),
		Port:             getEnv("PORT", "3000"),
		PublicDir:        getEnv("PUBLIC_DIR", "public"),
		DataDir:          getEnv("DATA_DIR", "data"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
		AllowAnyPassword: os.Getenv("ALLOW_ANY_PASSWORD") == "1",
		JWTSecret:        getEnv("ADMIN_JWT_SECRET", ""),
		MongoURI:         getEnv("MONGODB_URI", ""),
		MongoDatabase:    getEnv("MONGODB_DATABASE", "delights"),
		RedisURL:         getEnv("REDIS_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

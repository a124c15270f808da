package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppName string
	Env     string
	Host    string
	Port    int

	MongoURL     string
	DatabaseName string

	JWTSecret          string
	AccessTokenMinutes int

	CORSOrigins []string
	Debug       bool
}

func Load() (*Config, error) {
	cfg := &Config{
		AppName: getEnv("APP_NAME", "MegaCart API"),
		Env:     getEnv("APP_ENV", "development"),
		Host:    getEnv("HTTP_HOST", "0.0.0.0"),
		Port:    getEnvAsInt("HTTP_PORT", 8000),

		MongoURL:     os.Getenv("MONGODB_URL"),
		DatabaseName: getEnv("DATABASE_NAME", "megacart"),

		JWTSecret:          os.Getenv("SECRET_KEY"),
		AccessTokenMinutes: getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),

		Debug: getEnvAsBool("DEBUG", true),
	}

	if cfg.MongoURL == "" {
		cfg.MongoURL = "mongodb://localhost:27017/megacart"
		log.Println("MONGODB_URL not set, using local MongoDB fallback")
	}

	cors := getEnv("CORS_ORIGINS", "")
	if cors != "" {
		parts := strings.Split(cors, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		cfg.CORSOrigins = parts
	} else {
		cfg.CORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}

	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvAsBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

package config

import (
	"os"
	"time"
)

// Fixed domain thresholds.
const (
	// MinPetitionTarget is the smallest signature goal a petition may set.
	MinPetitionTarget = 10
	// TrendingThreshold: a petition is trending once it has strictly more
	// supporters than this.
	TrendingThreshold = 20
	// TokenTTL is the lifetime of issued session tokens.
	TokenTTL = 72 * time.Hour
)

type Config struct {
	HTTPAddr       string
	DatabaseDSN    string
	RedisAddr      string
	RedisPassword  string
	JWTSecret      string
	AdminAccessKey string
	// TelegramToken and TelegramChatID configure the staff notification
	// bridge; both empty disables it.
	TelegramToken  string
	TelegramChatID string
}

func Load() Config {
	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		DatabaseDSN:    getenv("DATABASE_DSN", "host=localhost user=user password=password dbname=voicebox port=5432 sslmode=disable"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getenv("REDIS_PASSWORD", ""),
		JWTSecret:      getenv("JWT_SECRET", "dev-secret"),
		AdminAccessKey: getenv("ADMIN_ACCESS_KEY", "VOICEBOX2025"),
		TelegramToken:  getenv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID: getenv("TELEGRAM_CHAT_ID", ""),
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

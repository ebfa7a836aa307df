package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Helin    HelinConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string

	// SessionStore selects the session context backend: "memory" or "redis".
	SessionStore      string
	SessionTTLMinutes int
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	// SalesEmail receives handoff and reservation alerts.
	SalesEmail string
}

// HelinConfig tunes the assistant without a rebuild. Zero values fall back
// to the engine defaults.
type HelinConfig struct {
	GreetingCap  int
	HandoffCap   int
	FaqThreshold int
	ContactPhone string
	// ResetKeywords leave HUMAN_HANDOFF when matched. Comma separated,
	// empty keeps the handoff sticky for the session lifetime.
	ResetKeywords []string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			SessionStore:       getEnv("SESSION_STORE", "memory"),
			SessionTTLMinutes:  getEnvAsInt("SESSION_TTL_MINUTES", 60),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Yatta"),
			SalesEmail: getEnv("SALES_ALERT_EMAIL", ""),
		},
		Helin: HelinConfig{
			GreetingCap:   getEnvAsInt("HELIN_GREETING_CAP", 2),
			HandoffCap:    getEnvAsInt("HELIN_HANDOFF_CAP", 2),
			FaqThreshold:  getEnvAsInt("HELIN_FAQ_THRESHOLD", 5),
			ContactPhone:  getEnv("HELIN_CONTACT_PHONE", "0530 487 23 33"),
			ResetKeywords: getEnvAsList("HELIN_RESET_KEYWORDS"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

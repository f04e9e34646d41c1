package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// AI provider
	AIProvider            string
	GeminiApiKey          string
	GeminiModel           string
	GeminiTemperature     float64
	GeminiMaxOutputTokens int

	// Gmail transport
	GoogleClientID     string
	GoogleClientSecret string
	GmailAccessToken   string
	GmailRefreshToken  string
	SenderEmail        string
	SenderName         string

	// Bound applied to each external call (provider, transport)
	RequestTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	temperature := 0.3
	if t := os.Getenv("GEMINI_TEMPERATURE"); t != "" {
		if parsed, err := strconv.ParseFloat(t, 64); err == nil {
			temperature = parsed
		}
	}

	maxTokens := 2048
	if m := os.Getenv("GEMINI_MAX_OUTPUT_TOKENS"); m != "" {
		if parsed, err := strconv.Atoi(m); err == nil && parsed > 0 {
			maxTokens = parsed
		}
	}

	requestTimeout := 30 * time.Second
	if rt := os.Getenv("REQUEST_TIMEOUT"); rt != "" {
		if parsed, err := time.ParseDuration(rt); err == nil {
			requestTimeout = parsed
		}
	}

	return &Config{
		Port:                  getEnv("PORT", "8080"),
		AIProvider:            getEnv("AI_PROVIDER", "gemini"),
		GeminiApiKey:          getEnv("GEMINI_API_KEY", ""),
		GeminiModel:           getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiTemperature:     temperature,
		GeminiMaxOutputTokens: maxTokens,
		GoogleClientID:        getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:    getEnv("GOOGLE_CLIENT_SECRET", ""),
		GmailAccessToken:      getEnv("GMAIL_ACCESS_TOKEN", ""),
		GmailRefreshToken:     getEnv("GMAIL_REFRESH_TOKEN", ""),
		SenderEmail:           getEnv("SENDER_EMAIL", ""),
		SenderName:            getEnv("SENDER_NAME", "Meeting Assistant"),
		RequestTimeout:        requestTimeout,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

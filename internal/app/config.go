package app

import (
	"os"
	"strconv"
	"strings"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	AppEnv          string
	HTTPAddr        string
	QuestionsXLSX   string
	RateLimitPerMin int
}

func LoadConfig() Config {
	return Config{
		AppEnv:          envOrDefault("APP_ENV", "development"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		QuestionsXLSX:   envOrDefault("QUESTIONS_XLSX", "data/questions.xlsx"),
		RateLimitPerMin: intOrDefault("RATE_LIMIT_PER_MINUTE", 120),
	}
}

func envOrDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intOrDefault(key string, fallback int) int {
	n, _ := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if n <= 0 {
		return fallback
	}
	return n
}

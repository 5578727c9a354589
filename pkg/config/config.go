package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `validate:"required,numeric"`

	// Хранилище анализов: memory | postgres | sqlite
	StoreDriver string `validate:"oneof=memory postgres sqlite"`
	DatabaseURL string `validate:"required_if=StoreDriver postgres"`
	SQLitePath  string `validate:"required_if=StoreDriver sqlite"`

	UploadDir      string `validate:"required"`
	MaxUploadBytes int64  `validate:"gt=0"`

	// LLM провайдер: openrouter | openai | gemini | none
	LLMProvider        string `validate:"oneof=openrouter openai gemini none"`
	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string
	OpenAIAPIKey       string
	OpenAIModel        string
	GeminiAPIKey       string
	GeminiModel        string
	LLMTimeout         time.Duration `validate:"gt=0"`
	LLMRequestsPerMin  int           `validate:"gte=0"`
	LLMMaxChars        int           `validate:"gte=0"`

	LogLevel  string
	LogFormat string `validate:"oneof=json pretty"`
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:               getEnv("PORT", "8080"),
		StoreDriver:        strings.ToLower(getEnv("STORE_DRIVER", "memory")),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		SQLitePath:         getEnv("SQLITE_PATH", "atsmatch.db"),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:     int64(getEnvInt("MAX_UPLOAD_BYTES", 5*1024*1024)),
		LLMProvider:        strings.ToLower(getEnv("LLM_PROVIDER", "openrouter")),
		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "atsmatch"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		LLMTimeout:         time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
		LLMRequestsPerMin:  getEnvInt("LLM_REQUESTS_PER_MINUTE", 0),
		LLMMaxChars:        getEnvInt("LLM_MAX_CHARS", 12000),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}
}

// Validate checks value ranges and cross-field requirements.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

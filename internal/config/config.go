package config

import (
	"fmt"
	"time"

	"homeworkbot/internal/logger"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	PracticumToken string `envconfig:"PRACTICUM_TOKEN"`
	TelegramToken  string `envconfig:"TELEGRAM_TOKEN"`
	TelegramChatID string `envconfig:"TELEGRAM_CHAT_ID"`

	Endpoint       string        `envconfig:"PRACTICUM_ENDPOINT" default:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
	RetryPeriod    time.Duration `envconfig:"RETRY_PERIOD" default:"10m"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"debug"` // debug|info|warn|error
}

// Load reads configuration from environment variables.
// Required tokens are not validated here, see MissingTokens.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.RetryPeriod <= 0 {
		return nil, fmt.Errorf("RETRY_PERIOD must be positive, got %s", cfg.RetryPeriod)
	}
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return &cfg, nil
}

// MissingTokens returns names of required credentials that are not set
func (c *Config) MissingTokens() []string {
	tokens := []struct {
		name  string
		value string
	}{
		{"PRACTICUM_TOKEN", c.PracticumToken},
		{"TELEGRAM_TOKEN", c.TelegramToken},
		{"TELEGRAM_CHAT_ID", c.TelegramChatID},
	}

	var missing []string
	for _, token := range tokens {
		if token.value == "" {
			missing = append(missing, token.name)
		}
	}
	return missing
}

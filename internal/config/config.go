package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, parsed from the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Storage
	UseMemoryStore         bool   `env:"USE_MEMORY_STORE"`
	DBHost                 string `env:"DB_HOST" envDefault:"localhost"`
	DBUser                 string `env:"DB_USER" envDefault:"postgres"`
	DBPass                 string `env:"DB_PASS"`
	DBName                 string `env:"DB_NAME" envDefault:"urbtech"`
	InstanceConnectionName string `env:"INSTANCE_CONNECTION_NAME"`

	// Local fallback store used when the primary order sink fails
	FallbackDBPath string `env:"FALLBACK_DB_PATH" envDefault:"urbtech_fallback.db"`

	// When set, orders are persisted through the remote orders API instead of
	// the local database
	OrdersAPIURL string `env:"ORDERS_API_URL"`

	// Sessions; 0 disables expiry
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"0"`

	// Twilio
	TwilioAccountSID   string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken    string `env:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppFrom string `env:"TWILIO_WHATSAPP_FROM"`

	DisableWebhookValidation bool `env:"DISABLE_WEBHOOK_VALIDATION"`
}

// Load reads .env files (for local development) and parses the environment
// into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		if err := godotenv.Load("environments/.env.development"); err != nil {
			log.Println("⚠️  No .env file found - checking environment variables")
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// TwilioConfigured reports whether all Twilio credentials are present.
func (c *Config) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioWhatsAppFrom != ""
}

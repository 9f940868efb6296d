package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Service configuration
	ServiceName string
	AppEnv      string
	Port        string

	// OpenAI configuration
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAITimeout time.Duration

	// Google Maps configuration
	GoogleMapsAPIKey string
	GoogleTimeout    time.Duration
	BiasRadiusMeters float64

	// SMS configuration
	SMSMaxLen int

	// Redis place-resolution cache (disabled when RedisURL is empty)
	RedisURL string
	CacheTTL time.Duration

	// NATS transport (disabled when NatsURL is empty)
	NatsURL     string
	NatsSubject string
	NatsTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		// Service settings
		ServiceName: getEnv("SERVICE_NAME", "sms-directions"),
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),

		// OpenAI settings
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4.1-nano"),
		OpenAITimeout: getDurationEnv("OPENAI_TIMEOUT", 10*time.Second),

		// Google Maps settings
		GoogleMapsAPIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		GoogleTimeout:    getDurationEnv("GOOGLE_TIMEOUT", 5*time.Second),
		BiasRadiusMeters: getFloatEnv("BIAS_RADIUS_METERS", 5000),

		// SMS settings
		SMSMaxLen: getIntEnv("SMS_MAX_LEN", 1600),

		// Cache settings
		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getDurationEnv("PLACE_CACHE_TTL", 15*time.Minute),

		// NATS settings
		NatsURL:     getEnv("NATS_URL", ""),
		NatsSubject: getEnv("NATS_REQUEST_SUBJECT", "sms.directions.request"),
		NatsTimeout: getDurationEnv("NATS_TIMEOUT", 30*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.GoogleMapsAPIKey == "" {
		return fmt.Errorf("GOOGLE_MAPS_API_KEY is required")
	}
	if c.SMSMaxLen <= 0 {
		return fmt.Errorf("SMS_MAX_LEN must be positive, got %d", c.SMSMaxLen)
	}
	if c.BiasRadiusMeters <= 0 {
		return fmt.Errorf("BIAS_RADIUS_METERS must be positive, got %f", c.BiasRadiusMeters)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort      string
	BaseURL      string
	HTTPTimeout  time.Duration
	PollInterval time.Duration
	WatchSymbols []string
	MinSpread    float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment directly")
	}

	return &Config{
		AppPort:      getEnv("APP_PORT", "3000"),
		BaseURL:      getEnv("ONLYFUNDING_BASE_URL", "https://api.onlyfunding.fun"),
		HTTPTimeout:  getEnvDuration("HTTP_TIMEOUT", 30*time.Second),
		PollInterval: getEnvDuration("POLL_INTERVAL", 30*time.Second),
		WatchSymbols: getEnvList("WATCH_SYMBOLS", []string{"BTC", "ETH", "SOL"}),
		MinSpread:    getEnvFloat("MIN_SPREAD", 0),
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
		log.Printf("invalid duration in %s, using default %s", key, fallback)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
		log.Printf("invalid number in %s, using default %g", key, fallback)
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}

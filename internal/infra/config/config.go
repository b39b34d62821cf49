package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env                string
	HTTPAddr           string
	StoreMode          string
	MongoURI           string
	MongoDB            string
	KafkaBrokers       []string
	KafkaTopicPrefix   string
	FixturesPath       string
	DefaultCellWidthPx float64
}

const (
	StoreModeMemory = "memory"
	StoreModeMongo  = "mongo"
)

// Load parses configuration from the current environment. Memory mode needs
// no external services; mongo mode requires MONGO_URI. Kafka is optional:
// without brokers rule events are dropped.
func Load() (Config, error) {
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		StoreMode:        strings.ToLower(getEnv("STORE_MODE", StoreModeMemory)),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          getEnv("MONGO_DB", "stayops"),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", ""),
		FixturesPath:     getEnv("FIXTURES_PATH", ""),
	}

	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		for _, raw := range strings.Split(brokers, ",") {
			if b := strings.TrimSpace(raw); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	cellWidth, err := parseFloatEnv("DEFAULT_CELL_WIDTH_PX", 40)
	if err != nil {
		return Config{}, err
	}
	cfg.DefaultCellWidthPx = cellWidth

	switch cfg.StoreMode {
	case StoreModeMemory:
	case StoreModeMongo:
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("MONGO_URI is required when STORE_MODE=mongo")
		}
	default:
		return Config{}, fmt.Errorf("invalid STORE_MODE: %q", cfg.StoreMode)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseFloatEnv(key string, def float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/kopacap/lending/pkg/kafka"
	"github.com/kopacap/lending/pkg/observability"
	"github.com/kopacap/lending/pkg/postgres"
)

// RedisConfig holds feature-cache connection parameters.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTLSecs  int
}

// Config is the full service configuration, loaded from the environment.
type Config struct {
	ServiceName string
	GRPCPort    int
	HTTPPort    int
	MetricsPort int

	DB    postgres.Config
	Kafka kafka.Config
	Redis RedisConfig
	Log   observability.LogConfig

	EventTopic string
	RuleTable  string
}

// Load reads configuration from the environment. A .env file in the working
// directory is honoured when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ServiceName: "lending-service",
		GRPCPort:    getEnvInt("GRPC_PORT", 9090),
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		MetricsPort: getEnvInt("METRICS_PORT", 9100),
		DB: postgres.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "lending"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "lending"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
			MinConns: int32(getEnvInt("DB_MIN_CONNS", 2)),
		},
		Kafka: kafka.Config{
			Brokers:        []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			BatchTimeoutMs: getEnvInt("KAFKA_BATCH_TIMEOUT_MS", 50),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTLSecs:  getEnvInt("FEATURE_CACHE_TTL_SECS", 300),
		},
		Log: observability.LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		EventTopic: getEnv("EVENT_TOPIC", "lending.events"),
		RuleTable:  getEnv("SCORING_RULE_TABLE", "v2"),
	}
}

// Validate fails fast on configuration the service cannot run without.
func (c Config) Validate() error {
	if c.DB.Password == "" {
		return fmt.Errorf("DB_PASSWORD environment variable is required")
	}
	return nil
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func (c Config) MetricsAddr() string {
	return fmt.Sprintf(":%d", c.MetricsPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

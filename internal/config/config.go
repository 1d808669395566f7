package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	KafkaBrokers    []string
	KafkaTopic      string
	KafkaGroupID    string
	DeadLetterPath  string
	ConsumerRetries int

	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration
	CacheRetries  int
	CacheBaseWait time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:  getEnv("LOG_LEVEL", "INFO"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "gameledger"),

		KafkaTopic:     getEnv("KAFKA_TOPIC", DefaultEquipTopic),
		KafkaGroupID:   getEnv("KAFKA_GROUP_ID", DefaultEquipGroupID),
		DeadLetterPath: getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	cfg.KafkaBrokers = strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.ConsumerRetries, err = getEnvInt("CONSUMER_RETRIES", DefaultConsumerRetries)
	if err != nil {
		return nil, err
	}

	cfg.CacheRetries, err = getEnvInt("CACHE_RETRIES", DefaultCacheRetries)
	if err != nil {
		return nil, err
	}

	ttlSeconds, err := getEnvInt("CACHE_TTL_SECONDS", DefaultCacheTTLSeconds)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = time.Duration(ttlSeconds) * time.Second

	waitMillis, err := getEnvInt("CACHE_BASE_WAIT_MS", DefaultCacheBaseWaitMillis)
	if err != nil {
		return nil, err
	}
	cfg.CacheBaseWait = time.Duration(waitMillis) * time.Millisecond

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

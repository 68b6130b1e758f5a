package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// MongoDB configuration (attachment storage)
	MongoDB MongoConfig

	// Redis configuration (session store)
	Redis RedisConfig

	// Kafka configuration (notification dispatch)
	Kafka KafkaConfig

	// Auth configuration
	Auth AuthConfig

	// Notification fan-out configuration
	Notification NotificationConfig

	// Sweeper configuration
	Sweeper SweeperConfig
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	Environment  string // development, staging, production
}

// DatabaseConfig contains MySQL connection configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	Username     string
	Password     string
	DatabaseName string
	MaxOpenConns int
	MaxIdleConns int
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
	Enabled bool
}

type AuthConfig struct {
	JWTSecret      string
	SessionTTLMins int
}

// NotificationConfig sizes the async fan-out manager.
type NotificationConfig struct {
	Workers           int
	ChannelBufferSize int
}

// SweeperConfig drives the declined friend-request cleanup loop.
type SweeperConfig struct {
	IntervalMinutes int
	ExpiryDays      int
}

// Load builds the configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8080"),
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvIntOrDefault("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvIntOrDefault("SERVER_WRITE_TIMEOUT", 15),
			Environment:  getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "127.0.0.1"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "chatcore"),
			Password:     getEnvOrDefault("DB_PASSWORD", ""),
			DatabaseName: getEnvOrDefault("DB_NAME", "chatcore_db"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoConfig{
			URI:      getEnvOrDefault("MONGO_URI", "mongodb://127.0.0.1:27017"),
			Database: getEnvOrDefault("MONGO_DB", "chatcore_files"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       getEnvIntOrDefault("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnvOrDefault("KAFKA_BROKERS", "127.0.0.1:9092"), ","),
			Topic:   getEnvOrDefault("KAFKA_TOPIC", "chat-events"),
			Enabled: getEnvOrDefault("KAFKA_ENABLED", "true") == "true",
		},
		Auth: AuthConfig{
			JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),
			SessionTTLMins: getEnvIntOrDefault("SESSION_TTL_MINUTES", 24*60),
		},
		Notification: NotificationConfig{
			Workers:           getEnvIntOrDefault("NOTIF_WORKERS", 5),
			ChannelBufferSize: getEnvIntOrDefault("NOTIF_BUFFER_SIZE", 1000),
		},
		Sweeper: SweeperConfig{
			IntervalMinutes: getEnvIntOrDefault("SWEEP_INTERVAL_MINUTES", 60),
			ExpiryDays:      getEnvIntOrDefault("SWEEP_EXPIRY_DAYS", 30),
		},
	}
}

// DSN builds the MySQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Username, c.Password, c.Host, c.Port, c.DatabaseName)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env     string `env:"ENV"`
	Http    HTTPConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Session SessionConfig
}

type HTTPConfig struct {
	Port string `env:"HTTP_PORT"`
}

type RedisConfig struct {
	Addrs    []string `env:"REDIS_ADDRS"`
	Password string   `env:"REDIS_PASSWORD"`
	DBRedis  int      `env:"REDIS_DB"`
}

type KafkaConfig struct {
	BrokerList     []string      `env:"KAFKA_BROKER_LIST"`
	Topic          string        `env:"KAFKA_TOPIC"`
	InitialBackoff time.Duration `env:"KAFKA_INITIAL_BACKOFF"`
	MaxRetries     int           `env:"KAFKA_MAX_RETRIES"`
	ConsumerGroup  string        `env:"KAFKA_CONSUMER_GROUP"`
}

type SessionConfig struct {
	TTL        time.Duration `env:"SESSION_TTL"`
	CookieName string        `env:"SESSION_COOKIE_NAME"`
}

const (
	defaultSessionTTL    = 24 * time.Hour
	defaultSessionCookie = "donation_session"
)

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env может отсутствовать в некоторых окружениях, не обязательно ошибку делать
	}

	cfg := &Config{}

	cfg.Env = os.Getenv("ENV")

	cfg.Http.Port = os.Getenv("HTTP_PORT")

	redisAddrs := os.Getenv("REDIS_ADDRS")
	if redisAddrs != "" {
		cfg.Redis.Addrs = splitAndTrim(redisAddrs, ",")
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	dbRedisStr := os.Getenv("REDIS_DB")
	if dbRedisStr != "" {
		if dbIndex, err := strconv.Atoi(dbRedisStr); err == nil {
			cfg.Redis.DBRedis = dbIndex
		}
	}

	kafkaBrokers := os.Getenv("KAFKA_BROKER_LIST")
	if kafkaBrokers != "" {
		cfg.Kafka.BrokerList = splitAndTrim(kafkaBrokers, ",")
	}
	cfg.Kafka.Topic = os.Getenv("KAFKA_TOPIC")

	if backoffStr := os.Getenv("KAFKA_INITIAL_BACKOFF"); backoffStr != "" {
		if d, err := time.ParseDuration(backoffStr); err == nil {
			cfg.Kafka.InitialBackoff = d
		}
	}
	if maxRetriesStr := os.Getenv("KAFKA_MAX_RETRIES"); maxRetriesStr != "" {
		if retries, err := strconv.Atoi(maxRetriesStr); err == nil {
			cfg.Kafka.MaxRetries = retries
		}
	}
	cfg.Kafka.ConsumerGroup = os.Getenv("KAFKA_CONSUMER_GROUP")

	cfg.Session.TTL = defaultSessionTTL
	if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
		if d, err := time.ParseDuration(ttlStr); err == nil {
			cfg.Session.TTL = d
		}
	}
	cfg.Session.CookieName = defaultSessionCookie
	if name := os.Getenv("SESSION_COOKIE_NAME"); name != "" {
		cfg.Session.CookieName = name
	}

	return cfg, nil
}

func splitAndTrim(str, sep string) []string {
	parts := strings.Split(str, sep)
	var result []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

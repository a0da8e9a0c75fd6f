package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Host        string `envconfig:"HOST" default:"0.0.0.0"`
	RESTPort    string `envconfig:"REST_PORT" default:"8080"`
	GraphQLPort string `envconfig:"GRAPHQL_PORT" default:"8081"`

	DatabaseHost     string `envconfig:"DB_HOST" required:"true"`
	DatabasePort     string `envconfig:"DB_PORT" default:"5432"`
	DatabaseUser     string `envconfig:"DB_USER" required:"true"`
	DatabasePassword string `envconfig:"DB_PASSWORD" required:"true"`
	DatabaseName     string `envconfig:"DB_NAME" required:"true"`
	DatabaseSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DatabaseMaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	MigrationsPath   string `envconfig:"MIGRATIONS_PATH" default:"file://migrations"`

	AdminSecret string `envconfig:"ADMIN_SECRET" required:"true"`

	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	LockTTL       time.Duration `envconfig:"LOCK_TTL" default:"30s"`

	JSONLimit       int64         `envconfig:"JSON_LIMIT" default:"4096"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load загружает конфигурацию из .env (если он есть) и переменных окружения
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// GetDSN возвращает строку подключения к базе данных
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// RESTAddr адрес REST сервера
func (c *Config) RESTAddr() string {
	return net.JoinHostPort(c.Host, c.RESTPort)
}

// GraphQLAddr адрес GraphQL сервера
func (c *Config) GraphQLAddr() string {
	return net.JoinHostPort(c.Host, c.GraphQLPort)
}

// UseRedisLock сообщает, что блокировки берутся в Redis, а не в Postgres
func (c *Config) UseRedisLock() bool {
	return c.RedisAddr != ""
}

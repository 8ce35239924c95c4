package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mcoot/quirkle-go/internal/factory"
	redisstorage "github.com/mcoot/quirkle-go/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	Output     string
	Storage    string
	RedisURL   string
	SQLitePath string
	LogLevel   string
}

// DefaultConfig returns a Config with defaults taken from the environment
func DefaultConfig() *Config {
	return &Config{
		Output:     getEnvOrDefault("QUIRKLE_OUTPUT", "text"),
		Storage:    getEnvOrDefault("QUIRKLE_STORAGE", factory.StorageTypeMemory),
		RedisURL:   getEnvOrDefault("REDIS_URL", redisstorage.DefaultConfig().URL),
		SQLitePath: getEnvOrDefault("QUIRKLE_SQLITE_PATH", factory.DefaultSQLitePath),
		LogLevel:   getEnvOrDefault("QUIRKLE_LOG_LEVEL", "warn"),
	}
}

// Validate checks the options that have a fixed set of values
func (c *Config) Validate() error {
	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("invalid output format %q: must be 'text' or 'json'", c.Output)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// NewLogger builds the JSON logger the CLI writes to w
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// FactoryConfig translates the CLI options into application factory config
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		Logger:      logger,
		StorageType: c.Storage,
		SQLitePath:  c.SQLitePath,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: must be debug, info, warn or error", s)
	}
	return level, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

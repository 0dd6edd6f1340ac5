package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type (
	// Config represents an application configuration.
	Config struct {
		HTTPServer HTTPServer
		Logger     Logger
		Kafka      Kafka
		Metrics    Metrics
	}
	// Config for HTTP server.
	HTTPServer struct {
		// The server startup address.
		Address string `env:"RUN_ADDRESS" env-default:":8080"`
		// Read header timeout.
		Timeout time.Duration `env:"HTTP_TIMEOUT" env-default:"5s"`
		// Idle timeout.
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
		// Shutdown timeout.
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"30s"`
	}
	// Config for application's logger.
	Logger struct {
		// Application logging level.
		Level string `env:"LOG_LEVEL" env-default:"info"`
		// json or console.
		Format string `env:"LOG_FORMAT" env-default:"json"`
		// Log file path. Empty means stdout.
		Path string `env:"LOG_PATH"`
		// Log files details.
		MaxSizeMB  int `env:"LOG_MAX_SIZE_MB" env-default:"100"`
		MaxBackups int `env:"LOG_MAX_BACKUPS" env-default:"3"`
		MaxAgeDays int `env:"LOG_MAX_AGE_DAYS" env-default:"28"`
	}
	// Config for the event publisher. No brokers means events are only logged.
	Kafka struct {
		Brokers      []string      `env:"KAFKA_BROKERS" env-separator:","`
		WriteTimeout time.Duration `env:"KAFKA_WRITE_TIMEOUT" env-default:"5s"`
		MaxFailures  uint32        `env:"KAFKA_MAX_FAILURES" env-default:"5"`
		OpenTimeout  time.Duration `env:"KAFKA_OPEN_TIMEOUT" env-default:"30s"`
	}
	Metrics struct {
		Namespace string `env:"METRICS_NAMESPACE" env-default:"bank_ledger"`
	}
)

// Load reads the optional .env file at envPath into the process environment
// and then populates the configuration from environment variables.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envPath, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment variables: %w", err)
	}

	return &cfg, nil
}

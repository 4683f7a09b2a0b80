// Package config provides configuration loading, validation, and management
// for the quote bot. It handles reading from a YAML file, applying BOT_*
// environment overrides, setting default values, and validating parameters.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config defines the application configuration for all components of the
// quote bot: logging, Telegram delivery, database, HTTP server, and the
// maintenance scheduler.
type Config struct {
	Logger    LoggerConfig    `koanf:"logger"`
	Telegram  TelegramConfig  `koanf:"telegram"`
	Database  DatabaseConfig  `koanf:"database"`
	Server    ServerConfig    `koanf:"server"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
}

// LoggerConfig controls log level and output format.
type LoggerConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// TelegramConfig holds the outbound messaging credential. An empty token is
// valid: the bot runs with a no-op sender so the pipeline stays exercisable
// without a credential.
type TelegramConfig struct {
	Token string `koanf:"token"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `koanf:"path" validate:"required"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `koanf:"addr" validate:"required"`
	PageSize        int           `koanf:"page_size" validate:"min=1,max=100"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=1s"`
}

// SchedulerConfig holds the scheduled task definitions keyed by task name.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `koanf:"tasks"`
}

// TaskConfig enables a named task and sets its cron schedule.
type TaskConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Schedule string `koanf:"schedule"`
}

// LoadConfig reads configuration from the given YAML file (missing file is
// fine, defaults apply), layers BOT_* environment variables on top, and
// validates the result. Nested keys use double underscores in the
// environment, e.g. BOT_TELEGRAM__TOKEN or BOT_SERVER__PAGE_SIZE.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("BOT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "BOT_")), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	if err := k.Unmarshal("", config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level: "info",
			JSON:  true,
		},
		Database: DatabaseConfig{
			Path: "quotes.db",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			PageSize:        9,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Scheduler: SchedulerConfig{
			Tasks: map[string]TaskConfig{
				"sql_maintenance": {
					Enabled:  true,
					Schedule: "0 0 4 * * *",
				},
			},
		},
	}
}

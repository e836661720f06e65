// Package config loads server settings from an optional YAML file, then
// applies BATTLESHIP_* environment overrides on top.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/mcoot/battleship-go2/internal/api"
	"github.com/mcoot/battleship-go2/internal/factory"
	redisstorage "github.com/mcoot/battleship-go2/internal/storage/redis"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "BATTLESHIP_"

var ErrInvalidConfig = errors.New("invalid config")

// Config is the full server configuration
type Config struct {
	Server  api.ServerConfig `yaml:"server" envPrefix:"SERVER_"`
	Storage StorageConfig    `yaml:"storage" envPrefix:"STORAGE_"`
	Log     LogConfig        `yaml:"log" envPrefix:"LOG_"`
}

// StorageConfig selects and configures the match store
type StorageConfig struct {
	Type  string              `yaml:"type" env:"TYPE"`
	Redis redisstorage.Config `yaml:"redis" envPrefix:"REDIS_"`
}

// LogConfig controls the application logger
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"FORMAT"` // json or text
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		Server: api.DefaultServerConfig(),
		Storage: StorageConfig{
			Type:  factory.StorageTypeMemory,
			Redis: redisstorage.DefaultConfig(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads path (skipped when empty) over the defaults, then applies the
// environment
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// Validate checks values that would otherwise fail late at startup
func (c Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	switch c.Storage.Type {
	case factory.StorageTypeMemory:
	case factory.StorageTypeRedis:
		if c.Storage.Redis.URL == "" {
			return fmt.Errorf("%w: redis storage needs a url", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage type %q", ErrInvalidConfig, c.Storage.Type)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// FactoryConfig converts the storage settings for factory.New
func (c Config) FactoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		Logger:      logger,
		StorageType: c.Storage.Type,
	}
	if c.Storage.Type == factory.StorageTypeRedis {
		redisCfg := c.Storage.Redis
		fc.RedisConfig = &redisCfg
	}
	return fc
}

func (c LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Level)
	}
	return level, nil
}

// NewLogger builds the application logger writing to w
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

// Package config loads petpal settings from defaults, a TOML file, the
// environment and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sadopc/petpal/internal/kv"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

var Backends = []string{BackendSQLite, BackendRedis, BackendMemory}

const (
	DefaultBackend     = BackendSQLite
	DefaultRedisPrefix = kv.DefaultRedisPrefix
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// Environment variables read by Load.
const (
	EnvBackend  = "PETPAL_BACKEND"
	EnvDB       = "PETPAL_DB"
	EnvRedisURL = "PETPAL_REDIS_URL"
	EnvLogLevel = "PETPAL_LOG_LEVEL"
	EnvLogFile  = "PETPAL_LOG_FILE"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Backend     string `toml:"backend"`
	DBPath      string `toml:"db_path"`
	RedisURL    string `toml:"redis_url"`
	RedisPrefix string `toml:"redis_prefix"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
	LogFile     string `toml:"log_file"`
}

// Load builds a Config from defaults, then the config file, then the
// environment. If path is empty the user config file is used when it exists;
// an explicit path must exist. Flags are applied by the caller before
// Finalize.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path == "" {
		path = findUserConfigFile()
	} else {
		path = expandPath(path)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	if path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)
	return cfg, nil
}

// Finalize fills derived defaults, expands paths and validates the result.
func (c *Config) Finalize() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if !slices.Contains(Backends, c.Backend) {
		return fmt.Errorf("%w: backend %q (want one of %s)", ErrInvalidConfig, c.Backend, strings.Join(Backends, ", "))
	}
	if c.Backend == BackendRedis && strings.TrimSpace(c.RedisURL) == "" {
		return fmt.Errorf("%w: redis backend needs redis_url or %s", ErrInvalidConfig, EnvRedisURL)
	}
	if c.RedisPrefix == "" {
		c.RedisPrefix = DefaultRedisPrefix
	}

	if c.DBPath == "" {
		path, err := kv.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("getting default db path: %w", err)
		}
		c.DBPath = path
	}
	c.DBPath = expandPath(c.DBPath)

	if c.LogFile == "" {
		dir, err := appDir()
		if err != nil {
			return err
		}
		c.LogFile = filepath.Join(dir, "petpal.log")
	}
	if c.LogFile != "-" {
		c.LogFile = expandPath(c.LogFile)
	}
	return nil
}

func setDefaults(cfg *Config) {
	cfg.Backend = DefaultBackend
	cfg.RedisPrefix = DefaultRedisPrefix
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// loadConfigFile decodes path over cfg. Unknown keys are an error so typos
// do not go unnoticed.
func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvBackend); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvRedisURL); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
}

// UserConfigPath is where Load looks for a config file by default.
func UserConfigPath() (string, error) {
	dir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func findUserConfigFile() string {
	path, err := UserConfigPath()
	if err != nil {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func appDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting config dir: %w", err)
	}
	return filepath.Join(dir, "petpal"), nil
}

// expandPath expands environment variables and a leading ~.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}

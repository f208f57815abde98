// Package config loads aasvg settings from a TOML file. Every field
// has a default, so running without a config file is the common case.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	aaerrors "github.com/asciidiag/aasvg/pkg/errors"
)

// Cache backend names accepted in [cache] backend.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Config is the root of the TOML document.
type Config struct {
	Render Render        `toml:"render"`
	Server Server        `toml:"server"`
	Cache  CacheSettings `toml:"cache"`
}

// Render holds default rendering options applied when the CLI flags
// are left unset.
type Render struct {
	Backdrop bool `toml:"backdrop"`
	Text     bool `toml:"text"`
}

// Server holds the HTTP serve-mode settings.
type Server struct {
	Addr string `toml:"addr"`
}

// CacheSettings selects and configures the render result cache.
type CacheSettings struct {
	Backend   string `toml:"backend"`
	Dir       string `toml:"dir"`
	RedisAddr string `toml:"redis_addr"`
	MongoURI  string `toml:"mongo_uri"`
	TTLHours  int    `toml:"ttl_hours"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Render: Render{Text: true},
		Server: Server{Addr: ":8537"},
		Cache: CacheSettings{
			Backend:   BackendNone,
			RedisAddr: "localhost:6379",
			TTLHours:  24,
		},
	}
}

// DefaultPath returns the conventional config location,
// $XDG_CONFIG_HOME/aasvg/config.toml or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "aasvg", "config.toml"), nil
}

// CacheDir resolves the file-cache directory: the configured one, or
// the platform user cache directory under "aasvg".
func (c CacheSettings) CacheDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "aasvg"), nil
}

// Load reads the config at path. An empty path means the default
// location. A missing file yields Default(); a malformed file or an
// unknown cache backend is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case BackendNone, BackendFile, BackendRedis, BackendMongo:
		return nil
	}
	return aaerrors.New(aaerrors.ErrCodeInvalidConfig,
		"unknown cache backend %q (must be %s, %s, %s, or %s)",
		c.Cache.Backend, BackendNone, BackendFile, BackendRedis, BackendMongo)
}

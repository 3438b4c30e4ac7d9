package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. XIVPATH_SERVER_ADDR.
const EnvPrefix = "XIVPATH_"

type Config struct {
	Server    ServerConfig    `yaml:"server" toml:"server" envPrefix:"SERVER_"`
	Data      DataConfig      `yaml:"data" toml:"data" envPrefix:"DATA_"`
	Templates TemplatesConfig `yaml:"templates" toml:"templates" envPrefix:"TEMPLATES_"`
	Session   SessionConfig   `yaml:"session" toml:"session" envPrefix:"SESSION_"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging" envPrefix:"LOGGING_"`
	Links     LinksConfig     `yaml:"links" toml:"links" envPrefix:"LINKS_"`
}

type ServerConfig struct {
	Addr              string        `yaml:"addr" toml:"addr" env:"ADDR"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" toml:"read_header_timeout" env:"READ_HEADER_TIMEOUT"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// DataConfig points at the directory holding the {gender}_{category}.json
// asset files.
type DataConfig struct {
	Dir string `yaml:"dir" toml:"dir" env:"DIR"`
}

type TemplatesConfig struct {
	Dir string `yaml:"dir" toml:"dir" env:"DIR"`
}

// SessionConfig controls whether selections are remembered in cookies.
type SessionConfig struct {
	Remember     bool          `yaml:"remember" toml:"remember" env:"REMEMBER"`
	CookiePrefix string        `yaml:"cookie_prefix" toml:"cookie_prefix" env:"COOKIE_PREFIX"`
	MaxAge       time.Duration `yaml:"max_age" toml:"max_age" env:"MAX_AGE"`
	Secure       bool          `yaml:"secure" toml:"secure" env:"SECURE"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level" env:"LEVEL"`
	Format string `yaml:"format" toml:"format" env:"FORMAT"` // "json" or "console"
}

type LinksConfig struct {
	Help string `yaml:"help" toml:"help" env:"HELP"`
}

// Load reads the config file at path over the defaults, then applies
// environment overrides. An empty path skips the file. The format follows
// the extension: .toml, or YAML for anything else.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := unmarshal(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func unmarshal(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Data: DataConfig{
			Dir: "json",
		},
		Templates: TemplatesConfig{
			Dir: "templates",
		},
		Session: SessionConfig{
			Remember:     false,
			CookiePrefix: "xivpath_",
			MaxAge:       365 * 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Links: LinksConfig{
			Help: "https://discord.gg/lunartear",
		},
	}
}

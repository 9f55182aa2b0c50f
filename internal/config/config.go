package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the explicit configuration value object handed to constructors.
// Business logic never reads the environment directly.
type Config struct {
	Log struct {
		Level   string `koanf:"level"`
		Console bool   `koanf:"console"`
	} `koanf:"log"`

	Model struct {
		APIKey         string  `koanf:"api_key"`
		Name           string  `koanf:"name"`
		MaxTokens      int     `koanf:"max_tokens"`
		Temperature    float64 `koanf:"temperature"`
		RequestTimeout string  `koanf:"request_timeout"`
		SystemPrompt   string  `koanf:"system_prompt"`
	} `koanf:"model"`

	Cache struct {
		Enabled bool   `koanf:"enabled"`
		TTL     string `koanf:"ttl"`
	} `koanf:"cache"`

	Templates struct {
		Dir string `koanf:"dir"`
		TTL string `koanf:"ttl"`
	} `koanf:"templates"`

	Database struct {
		URL string `koanf:"url"`
	} `koanf:"database"`
}

// Load reads configuration from defaults, an optional TOML file, and
// CONCEPTS_-prefixed environment variables, in that precedence order.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	k.Load(confmap.Provider(map[string]interface{}{
		"log.level":             "info",
		"log.console":           true,
		"model.name":            "claude-3-5-sonnet-20241022",
		"model.max_tokens":      4000,
		"model.temperature":     0.7,
		"model.request_timeout": "120s",
		"cache.enabled":         true,
		"cache.ttl":             "1h",
		"templates.dir":         "./templates",
		"templates.ttl":         "1h",
	}, "."), nil)

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		for _, path := range []string{"./conceptsvc.toml", "$HOME/.conceptsvc.toml"} {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	k.Load(env.Provider("CONCEPTS_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "CONCEPTS_")), "_", ".", 1)
	}), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the pieces a live run cannot do without.
func Validate(cfg *Config) error {
	if cfg.Model.APIKey == "" {
		return fmt.Errorf("model api_key is required")
	}
	if cfg.Model.Name == "" {
		return fmt.Errorf("model name is required")
	}
	if _, err := cfg.CacheTTL(); err != nil {
		return fmt.Errorf("cache ttl: %w", err)
	}
	if _, err := cfg.RequestTimeout(); err != nil {
		return fmt.Errorf("model request_timeout: %w", err)
	}
	return nil
}

// CacheTTL parses the response cache TTL.
func (c *Config) CacheTTL() (time.Duration, error) {
	return parseDuration(c.Cache.TTL, time.Hour)
}

// TemplatesTTL parses the template cache TTL.
func (c *Config) TemplatesTTL() (time.Duration, error) {
	return parseDuration(c.Templates.TTL, time.Hour)
}

// RequestTimeout parses the outbound model call timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	return parseDuration(c.Model.RequestTimeout, 2*time.Minute)
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", s)
	}
	return d, nil
}

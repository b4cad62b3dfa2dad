// Package config loads the client configuration: environment variables
// first, then an optional YAML file whose set keys win.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config carries everything the CLI needs to reach the backend.
type Config struct {
	APIBaseURL string        `env:"GUARDIA_API_BASE_URL" yaml:"api_base_url"`
	Timeout    time.Duration `env:"GUARDIA_TIMEOUT" envDefault:"30s" yaml:"-"`
	PageSize   int           `env:"GUARDIA_PAGE_SIZE" envDefault:"6" yaml:"page_size"`
	Debug      bool          `env:"GUARDIA_DEBUG" yaml:"debug"`
	TokenFile  string        `env:"GUARDIA_TOKEN_FILE" yaml:"token_file"`
}

// fileConfig mirrors Config with pointer fields so an absent YAML key is
// distinguishable from a zero value.
type fileConfig struct {
	APIBaseURL *string `yaml:"api_base_url"`
	Timeout    *string `yaml:"timeout"`
	PageSize   *int    `yaml:"page_size"`
	Debug      *bool   `yaml:"debug"`
	TokenFile  *string `yaml:"token_file"`
}

// Load reads the environment and, when path is non-blank and the file
// exists, overlays the file's set keys on top.
func Load(path string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if file.APIBaseURL != nil {
		cfg.APIBaseURL = *file.APIBaseURL
	}
	if file.Timeout != nil {
		d, err := time.ParseDuration(*file.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %s: timeout: %w", path, err)
		}
		cfg.Timeout = d
	}
	if file.PageSize != nil {
		cfg.PageSize = *file.PageSize
	}
	if file.Debug != nil {
		cfg.Debug = *file.Debug
	}
	if file.TokenFile != nil {
		cfg.TokenFile = *file.TokenFile
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = 6
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return cfg, nil
}

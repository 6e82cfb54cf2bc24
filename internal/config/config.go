package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configPathKey = "config.path"
	configDir     = ".garmin-coach"
	configFile    = "config.toml"

	providerEnv = "GARMIN_COACH_PROVIDER"
	modelEnv    = "GARMIN_COACH_MODEL"
	baseURLEnv  = "GARMIN_COACH_BASE_URL"
	apiKeyEnv   = "GARMIN_COACH_API_KEY"

	defaultProvider       = "ollama"
	defaultModel          = "llama2"
	defaultBaseURL        = "http://localhost:11434"
	defaultTimeoutSeconds = 30
)

type Coach struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

func (c Coach) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type Export struct {
	Path string `toml:"path"`
}

type Config struct {
	Coach  Coach  `toml:"coach"`
	Export Export `toml:"export"`
}

// Load reads the config file resolved through cfg (viper key
// "config.path", defaulting to ~/.garmin-coach/config.toml), then applies
// environment overrides and defaults. A missing file is not an error; the
// tool runs fine on defaults alone.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(configPathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, configDir, configFile)
	}

	var loaded Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return Config{}, fmt.Errorf("read config file: %w", err)
	default:
		if err := toml.Unmarshal(data, &loaded); err != nil {
			return Config{}, fmt.Errorf("decode config file: %w", err)
		}
	}

	applyEnvOverrides(&loaded)
	applyDefaults(&loaded)

	return loaded, nil
}

func applyEnvOverrides(cfg *Config) {
	if value := os.Getenv(providerEnv); value != "" {
		cfg.Coach.Provider = value
	}
	if value := os.Getenv(modelEnv); value != "" {
		cfg.Coach.Model = value
	}
	if value := os.Getenv(baseURLEnv); value != "" {
		cfg.Coach.BaseURL = value
	}
	if value := os.Getenv(apiKeyEnv); value != "" {
		cfg.Coach.APIKey = value
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Coach.Provider == "" {
		cfg.Coach.Provider = defaultProvider
	}
	if cfg.Coach.Model == "" {
		cfg.Coach.Model = defaultModel
	}
	// The base URL default is ollama-specific; hosted providers keep
	// their SDK endpoints unless one is configured explicitly.
	if cfg.Coach.BaseURL == "" && strings.EqualFold(cfg.Coach.Provider, defaultProvider) {
		cfg.Coach.BaseURL = defaultBaseURL
	}
	if cfg.Coach.TimeoutSeconds <= 0 {
		cfg.Coach.TimeoutSeconds = defaultTimeoutSeconds
	}
}

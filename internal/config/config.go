// Package config loads pokedex configuration from ~/.pokedex/config.yaml
// with environment-variable overrides for secrets.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all pokedex configuration.
type Config struct {
	// API endpoints
	API APIConfig `yaml:"api"`

	// TCG card search
	TCG TCGConfig `yaml:"tcg"`

	// Random generator settings
	Generator GeneratorConfig `yaml:"generator"`

	// UI settings
	UI UIConfig `yaml:"ui"`

	// Data directory for the shiny log and offline snapshot
	DataDir string `yaml:"data_dir"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the PokéAPI client.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// TCGConfig configures the Pokémon TCG API client.
type TCGConfig struct {
	BaseURL string `yaml:"base_url"`
	// APIKey is required for card search. Override with POKEDEX_TCG_API_KEY.
	APIKey   string `yaml:"api_key"`
	PageSize int    `yaml:"page_size"`
}

// GeneratorConfig configures the random team generator.
type GeneratorConfig struct {
	// ShinyChance is the per-pick shiny probability. 0 means full odds
	// (1/4096).
	ShinyChance float64 `yaml:"shiny_chance"`
	// HistorySize bounds how many generated batches are kept for
	// back/forward navigation.
	HistorySize int `yaml:"history_size"`
}

// UIConfig configures the browse TUI.
type UIConfig struct {
	Theme    string `yaml:"theme"` // light, dark
	PageSize int    `yaml:"page_size"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		API: APIConfig{
			BaseURL: "https://pokeapi.co/api/v2",
			Timeout: 15 * time.Second,
		},
		TCG: TCGConfig{
			BaseURL:  "https://api.pokemontcg.io/v2",
			PageSize: 24,
		},
		Generator: GeneratorConfig{
			ShinyChance: 0,
			HistorySize: 10,
		},
		UI: UIConfig{
			Theme:    "dark",
			PageSize: 30,
		},
		DataDir: filepath.Join(home, ".pokedex"),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pokedex", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults rather than an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets environment variables win over file values.
// Secrets in particular should come from the environment, not the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("POKEDEX_TCG_API_KEY"); v != "" {
		c.TCG.APIKey = v
	}
	if v := os.Getenv("POKEDEX_API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("POKEDEX_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("POKEDEX_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks ranges that would otherwise fail in confusing places.
func (c *Config) Validate() error {
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if c.Generator.ShinyChance < 0 || c.Generator.ShinyChance > 1 {
		return fmt.Errorf("generator.shiny_chance must be in [0, 1]")
	}
	if c.Generator.HistorySize < 0 {
		return fmt.Errorf("generator.history_size must not be negative")
	}
	if c.UI.PageSize < 0 {
		return fmt.Errorf("ui.page_size must not be negative")
	}
	return nil
}

// EffectiveShinyChance resolves the configured shiny rate, applying the
// full-odds default when unset.
func (c *Config) EffectiveShinyChance() float64 {
	if c.Generator.ShinyChance == 0 {
		return 1.0 / 4096
	}
	return c.Generator.ShinyChance
}

// Package config provides YAML-based configuration with environment overrides.
// API credentials are never read from the file, only from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Advanced AdvancedConfig `yaml:"advanced"`

	// Credentials, environment-only.
	GeminiAPIKey string `yaml:"-"`
	OpenAIAPIKey string `yaml:"-"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int    `yaml:"port"`
	BindAddress  string `yaml:"bind_address"`
	EnableCORS   bool   `yaml:"enable_cors"`
	AllowOrigins string `yaml:"allow_origins"`
	ReadTimeout  int    `yaml:"read_timeout_seconds"`
	WriteTimeout int    `yaml:"write_timeout_seconds"`
	IdleTimeout  int    `yaml:"idle_timeout_seconds"`
	BodyLimit    string `yaml:"body_limit"`
}

// AnalysisConfig contains paper-analysis settings.
type AnalysisConfig struct {
	Provider        string `yaml:"provider"` // "gemini" or "openai"
	GeminiModel     string `yaml:"gemini_model"`
	OpenAIModel     string `yaml:"openai_model"`
	MaxPages        int    `yaml:"max_pages"` // pages of the PDF read for text
	RequestTimeout  int    `yaml:"request_timeout_seconds"`
	ResultMaxAge    int    `yaml:"result_max_age_minutes"`
	CleanupInterval int    `yaml:"cleanup_interval_minutes"`
	MaxResults      int    `yaml:"max_results"`
}

// AdvancedConfig contains tuning options.
type AdvancedConfig struct {
	EnableRequestLogging bool `yaml:"enable_request_logging"`
	EnableCompression    bool `yaml:"enable_compression"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8090,
			BindAddress:  "0.0.0.0",
			EnableCORS:   true,
			AllowOrigins: "*",
			ReadTimeout:  30,
			WriteTimeout: 300,
			IdleTimeout:  120,
			BodyLimit:    "32M",
		},
		Analysis: AnalysisConfig{
			Provider:        "gemini",
			GeminiModel:     "gemini-2.5-flash",
			OpenAIModel:     "gpt-4o-mini",
			MaxPages:        5,
			RequestTimeout:  120,
			ResultMaxAge:    30,
			CleanupInterval: 5,
			MaxResults:      20,
		},
		Advanced: AdvancedConfig{
			EnableRequestLogging: true,
			EnableCompression:    true,
		},
	}
}

// Load loads configuration from a YAML file. If the file does not exist,
// a default one is written so operators have something to edit.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		cfg.applyEnvironmentOverrides()
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	return cfg, nil
}

// Save writes the configuration to a YAML file. Credentials are not written.
func (c *Config) Save(configPath string) error {
	output, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# PaperLens configuration\n# This file is auto-generated on first run.\n# API keys are read from GEMINI_API_KEY / OPENAI_API_KEY, never from here.\n\n")
	content := append(header, output...)

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnvironmentOverrides allows environment variables to override config values.
func (c *Config) applyEnvironmentOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if provider := os.Getenv("PAPERLENS_PROVIDER"); provider != "" {
		c.Analysis.Provider = provider
	}

	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	c.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
}

// Validate checks that the selected provider has its credential set.
func (c *Config) Validate() error {
	switch c.Analysis.Provider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set in environment")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY not set in environment")
		}
	default:
		return fmt.Errorf("unknown analysis provider %q", c.Analysis.Provider)
	}
	return nil
}

// GetServerAddr returns the server bind address.
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}

// RequestTimeout returns the per-request deadline for the model call.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Analysis.RequestTimeout) * time.Second
}

// ResultMaxAge returns how long a stored analysis survives without touches.
func (c *Config) ResultMaxAge() time.Duration {
	return time.Duration(c.Analysis.ResultMaxAge) * time.Minute
}

// CleanupInterval returns how often expired analyses are swept.
func (c *Config) CleanupInterval() time.Duration {
	return time.Duration(c.Analysis.CleanupInterval) * time.Minute
}

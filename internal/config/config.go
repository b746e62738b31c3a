// Package config provides unified configuration loading for the menu builder.
// Supports YAML files, environment variables, and programmatic overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the menu builder.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	LLM           LLMConfig           `yaml:"llm"`
	Fetch         FetchConfig         `yaml:"fetch"`
	Pipeline      PipelineConfig      `yaml:"pipeline"`
	Orientation   OrientationConfig   `yaml:"orientation"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings for the API binary.
type ServerConfig struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
}

// LLMConfig holds extraction capability settings. The API key is taken from
// the OPENAI_API_KEY environment variable only and never from the file.
type LLMConfig struct {
	BaseURL        string        `yaml:"base_url"`
	Model          string        `yaml:"model"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxRetries     int           `yaml:"max_retries"`
	APIKey         string        `yaml:"-"`
}

// FetchConfig holds document download settings.
type FetchConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	UserAgent  string        `yaml:"user_agent"`
	MaxRetries int           `yaml:"max_retries"`
}

// PipelineConfig holds document preparation settings.
type PipelineConfig struct {
	Workers   int `yaml:"workers"`
	RenderDPI int `yaml:"render_dpi"`
}

// OrientationConfig holds tesseract orientation detection settings.
type OrientationConfig struct {
	Enabled             bool    `yaml:"enabled"`
	TesseractPath       string  `yaml:"tesseract_path"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load reads configuration from a YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8090,
			ReadTimeout:      30 * time.Second,
			WriteTimeout:     5 * time.Minute,
			IdleTimeout:      120 * time.Second,
			GracefulShutdown: 10 * time.Second,
		},
		LLM: LLMConfig{
			BaseURL:        "https://api.openai.com/v1/chat/completions",
			Model:          "gpt-4o",
			RequestTimeout: 3 * time.Minute,
			MaxRetries:     3,
		},
		Fetch: FetchConfig{
			Timeout:    30 * time.Second,
			UserAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
			MaxRetries: 3,
		},
		Pipeline: PipelineConfig{
			Workers:   4,
			RenderDPI: 144, // 2x the 72 DPI baseline
		},
		Orientation: OrientationConfig{
			Enabled:             true,
			TesseractPath:       "tesseract",
			ConfidenceThreshold: 5,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "json",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.LLM.BaseURL == "" {
		return fmt.Errorf("llm base_url is required")
	}

	if c.LLM.Model == "" {
		return fmt.Errorf("llm model is required")
	}

	if c.Pipeline.Workers < 1 {
		return fmt.Errorf("pipeline workers must be at least 1")
	}

	if c.Pipeline.RenderDPI < 36 || c.Pipeline.RenderDPI > 600 {
		return fmt.Errorf("render_dpi out of range: %d", c.Pipeline.RenderDPI)
	}

	if c.Orientation.ConfidenceThreshold < 0 {
		return fmt.Errorf("orientation confidence_threshold must not be negative")
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}

	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}

	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}

	if v := os.Getenv("FETCH_USER_AGENT"); v != "" {
		cfg.Fetch.UserAgent = v
	}

	if v := os.Getenv("PIPELINE_WORKERS"); v != "" {
		if workers, err := strconv.Atoi(v); err == nil {
			cfg.Pipeline.Workers = workers
		}
	}

	if v := os.Getenv("TESSERACT_PATH"); v != "" {
		cfg.Orientation.TesseractPath = v
	}

	if v := os.Getenv("ORIENTATION_ENABLED"); v == "false" {
		cfg.Orientation.Enabled = false
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}

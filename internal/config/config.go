package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config defines donation run configuration.
type Config struct {
	Backend  BackendConfig  `yaml:"backend"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Audio    AudioConfig    `yaml:"audio"`
	DB       DBConfig       `yaml:"db"`
	Log      LogConfig      `yaml:"log"`
}

type BackendConfig struct {
	BaseURL        string `yaml:"base_url" env:"DONATE_BACKEND_URL"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"DONATE_BACKEND_TIMEOUT_SECONDS"`
}

type ScheduleConfig struct {
	ID       string `yaml:"id" env:"DONATE_SCHEDULE_ID"`
	Language string `yaml:"language" env:"DONATE_LANGUAGE"`
}

type AudioConfig struct {
	// SourcePath names the file or pipe the capture device reads from.
	SourcePath string `yaml:"source_path" env:"DONATE_AUDIO_SOURCE"`
	// Extension determines the uploaded filename suffix, e.g. "wav".
	Extension string `yaml:"extension" env:"DONATE_AUDIO_EXTENSION"`
}

type DBConfig struct {
	Path string `yaml:"path" env:"DONATE_DB_PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"DONATE_LOG_LEVEL"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Backend: BackendConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 30,
		},
		Schedule: ScheduleConfig{
			ID:       "default",
			Language: "fi",
		},
		Audio: AudioConfig{
			Extension: "wav",
		},
		DB: DBConfig{
			Path: "donatespeech.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("DONATE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend base URL is required")
	}
	if c.Backend.TimeoutSeconds <= 0 {
		return fmt.Errorf("backend timeout must be positive, got %d", c.Backend.TimeoutSeconds)
	}
	if c.Schedule.ID == "" {
		return fmt.Errorf("schedule id is required")
	}
	if c.Schedule.Language == "" {
		return fmt.Errorf("language tag is required")
	}
	return nil
}

// Timeout returns the bounded wait applied to every network leg.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

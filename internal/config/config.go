package config

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var validate = validator.New()

// Config holds the shipped application constants. It is loaded once at
// startup and passed by value; nothing mutates it afterwards.
type Config struct {
	Host           string   `yaml:"host" validate:"required"`
	Port           int      `yaml:"port" validate:"min=1,max=65535"`
	MaxLength      int      `yaml:"max_length" validate:"min=1"`
	WarnLength     int      `yaml:"warn_length" validate:"min=0,ltefield=MaxLength"`
	PreviewLength  int      `yaml:"preview_length" validate:"min=1"`
	PollIntervalMS int      `yaml:"poll_interval_ms" validate:"min=100"`
	ChatboxAddress string   `yaml:"chatbox_address" validate:"required,startswith=/"`
	Title          string   `yaml:"title"`
	Icon           string   `yaml:"icon"`
	ProcessNames   []string `yaml:"process_names" validate:"min=1,dive,required"`
}

// PollInterval is the delay between the end of one presence check and the
// start of the next.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// Load parses the embedded defaults.
func Load() (Config, error) {
	return Parse(defaultsYAML)
}

// Parse decodes and validates a YAML config document.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := decodeYAML(data, &cfg, "defaults.yaml"); err != nil {
		return Config{}, err
	}
	cfg.Host = strings.TrimSpace(cfg.Host)
	for i, name := range cfg.ProcessNames {
		cfg.ProcessNames[i] = strings.ToLower(strings.TrimSpace(name))
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Default returns the shipped config. A broken defaults.yaml is a build
// defect, so it panics instead of returning an error.
func Default() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

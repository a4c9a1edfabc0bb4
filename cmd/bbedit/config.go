package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds persistent editor settings
type Config struct {
	Extension      string `yaml:"extension" validate:"required,oneof=toml json yaml yml"`
	DefaultFile    string `yaml:"default_file" validate:"required"`
	ConfirmDelete  bool   `yaml:"confirm_delete"`
	PollIntervalMs int    `yaml:"poll_interval_ms" validate:"min=1,max=1000"`
	LogFile        string `yaml:"log_file"`
	LogLevel       string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LastDir        string `yaml:"last_dir"`
}

var validate = validator.New()

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	cwd, _ := os.Getwd()
	return Config{
		Extension:      "toml",
		DefaultFile:    "breadboard.toml",
		PollIntervalMs: 16,
		LogLevel:       "info",
		LastDir:        cwd,
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bbedit.yaml"
	}
	return filepath.Join(home, ".bbedit.yaml")
}

// LoadConfig overlays the YAML file at path onto the defaults. A missing file
// is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes the configuration as YAML.
func SaveConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	content := append([]byte("# bbedit configuration\n"), data...)
	return os.WriteFile(path, content, 0644)
}

// Validate checks the field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

func formatFieldError(fe validator.FieldError) string {
	field := yamlName(fe.StructField())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}

var yamlNames = map[string]string{
	"Extension":      "extension",
	"DefaultFile":    "default_file",
	"PollIntervalMs": "poll_interval_ms",
	"LogLevel":       "log_level",
}

func yamlName(field string) string {
	if n, ok := yamlNames[field]; ok {
		return n
	}
	return strings.ToLower(field)
}

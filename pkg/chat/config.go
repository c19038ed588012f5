// Package chat — file configuration.
package chat

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/bitop-dev/chatkit/pkg/ai/catalog"
)

// FileConfig is the YAML structure of the chatkit config file.
type FileConfig struct {
	// Model selects the catalogue model by numeric ID, display name, or
	// upstream ID. Empty = the catalogue default.
	Model string `yaml:"model"`

	// UserName is the display name conversations address the user by.
	// Values like "${USER}" are expanded from the environment.
	UserName string `yaml:"user_name"`

	// Search enables the web search tool for every conversation.
	Search bool `yaml:"search"`

	// ReasoningEffort requests a reasoning budget from capable models.
	// Values: "" | "low" | "medium" | "high".
	ReasoningEffort string `yaml:"reasoning_effort"`

	// LogLevel: "debug" | "info" | "warn" | "error". Default: "info".
	LogLevel string `yaml:"log_level"`

	// LogFormat: "console" | "json". Default: "console".
	LogFormat string `yaml:"log_format"`
}

// LoadFileConfig reads and parses a YAML config file, expanding ${ENV_VAR}
// references in string values.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	// Expand environment variables in the raw YAML before parsing.
	expanded := os.ExpandEnv(string(data))

	var cfg FileConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := validateFileConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOptionalConfig loads the config file at path, falling back to
// DefaultConfigPath when path is empty. A missing file at the default
// location is not an error and yields an empty config; an explicitly
// given path must exist.
func LoadOptionalConfig(path string) (*FileConfig, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultConfigPath()
	}
	if path == "" {
		return &FileConfig{}, nil
	}
	cfg, err := LoadFileConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &FileConfig{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

func validateFileConfig(cfg *FileConfig) error {
	cfg.ReasoningEffort = strings.ToLower(strings.TrimSpace(cfg.ReasoningEffort))
	switch cfg.ReasoningEffort {
	case "", EffortLow, EffortMedium, EffortHigh:
	default:
		return fmt.Errorf("config: unknown reasoning_effort %q (want low, medium, or high)", cfg.ReasoningEffort)
	}
	if cfg.Model != "" {
		if _, err := cfg.ResolveModel(); err != nil {
			return err
		}
	}
	return nil
}

// ResolveModel resolves the configured model reference against the
// catalogue. An empty reference resolves to the catalogue default.
func (c *FileConfig) ResolveModel() (catalog.Model, error) {
	return ResolveModelRef(c.Model)
}

// ResolveModelRef resolves a model reference (numeric ID, display name, or
// upstream ID) against the catalogue. An empty reference resolves to the
// catalogue default.
func ResolveModelRef(ref string) (catalog.Model, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return catalog.Default()
	}
	if id, err := strconv.Atoi(ref); err == nil {
		if m, ok := catalog.ByID(id); ok {
			return m, nil
		}
		return catalog.Model{}, fmt.Errorf("config: no model with id %d", id)
	}
	if m, ok := catalog.ByName(ref); ok {
		return m, nil
	}
	return catalog.Model{}, fmt.Errorf("config: unknown model %q", ref)
}

// DefaultConfigPath returns the platform-appropriate config file location.
// Follows XDG on Linux/Mac; falls back to ~/.config/chatkit.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chatkit", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "chatkit", "config.yaml")
}

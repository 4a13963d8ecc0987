package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/orgai/assets"
	"github.com/doeshing/orgai/internal/domain"
	"github.com/doeshing/orgai/internal/pkg/filesystem"
	"github.com/doeshing/orgai/internal/ports"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "ORGAI_CONFIG"

// FileLoader loads YAML configuration from ~/.orgai/config.yaml (overridable via ORGAI_CONFIG).
// A missing file yields the embedded defaults; nothing is ever written back.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig()
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return hydrateDefaults(cfg)
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandHome(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandHome(custom)
	}
	return filepath.Join(filesystem.AppDir(), "config.yaml")
}

// Dir returns the directory holding the config file.
func (l *FileLoader) Dir() string {
	return filepath.Dir(l.Path())
}

// DefaultConfig decodes the embedded default configuration.
func DefaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return cfg, nil
}

// hydrateDefaults fills the sections a user file leaves out.
func hydrateDefaults(cfg domain.Config) (domain.Config, error) {
	defaults, err := DefaultConfig()
	if err != nil {
		return domain.Config{}, err
	}
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = defaults.ConfigFormatVersion
	}
	if len(cfg.Models) == 0 {
		cfg.Models = defaults.Models
		if cfg.Preferences.DefaultModel == "" {
			cfg.Preferences.DefaultModel = defaults.Preferences.DefaultModel
		}
	}
	if cfg.Preferences.DefaultModel == "" {
		cfg.Preferences.DefaultModel = cfg.Models[0].Name
	}
	return cfg, nil
}

var _ ports.ConfigProvider = (*FileLoader)(nil)

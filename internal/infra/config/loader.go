package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the config file name in both locations.
const ConfigFileName = "figroad.toml"

// Environment variables that override file configuration.
const (
	EnvFigmaToken = "FIGMA_API_TOKEN"
	EnvGeminiKey  = "GEMINI_API_KEY"
)

// Loader loads configuration from TOML files. Precedence, lowest first:
// built-in defaults, global config, working-directory config, environment.
type Loader struct {
	workDir       string // Directory holding the local figroad.toml
	globalConfDir string // Global config directory (e.g. ~/.config/figroad)
	lookupEnv     func(string) (string, bool)
}

// NewLoader creates a Loader for the given working directory.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
		lookupEnv:     os.LookupEnv,
	}
}

// NewLoaderWithGlobalDir creates a Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
		lookupEnv:     os.LookupEnv,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "figroad")
}

// Load returns the merged configuration.
func (l *Loader) Load() (*Config, error) {
	cfg := NewDefault()

	if l.globalConfDir != "" {
		global, err := l.loadFile(filepath.Join(l.globalConfDir, ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = merge(cfg, global)
	}

	local, err := l.loadFile(filepath.Join(l.workDir, ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	cfg = merge(cfg, local)

	if token, ok := l.lookupEnv(EnvFigmaToken); ok && token != "" {
		cfg.Token = token
	}
	if key, ok := l.lookupEnv(EnvGeminiKey); ok && key != "" {
		cfg.GeminiAPIKey = key
	}

	return cfg, nil
}

// loadFile parses one TOML config file.
func (l *Loader) loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
}

// noEnv disables environment overrides for a loader.
func noEnv(l *Loader) *Loader {
	l.lookupEnv = func(string) (string, bool) { return "", false }
	return l
}

func TestLoader_Defaults(t *testing.T) {
	l := noEnv(NewLoaderWithGlobalDir(t.TempDir(), t.TempDir()))

	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "figma_screenshots", cfg.OutputDir)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, float64(1), cfg.Scale)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Token)
}

func TestLoader_LocalOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	workDir := t.TempDir()
	writeConfig(t, globalDir, "token = \"global-token\"\nworkers = 8\n")
	writeConfig(t, workDir, "token = \"local-token\"\n")

	l := noEnv(NewLoaderWithGlobalDir(workDir, globalDir))
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "local-token", cfg.Token, "repo config takes precedence")
	assert.Equal(t, 8, cfg.Workers, "unset local fields keep global values")
}

func TestLoader_EnvOverridesFiles(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, workDir, "token = \"file-token\"\n")

	l := NewLoaderWithGlobalDir(workDir, t.TempDir())
	l.lookupEnv = func(key string) (string, bool) {
		switch key {
		case EnvFigmaToken:
			return "env-token", true
		case EnvGeminiKey:
			return "env-gemini", true
		}
		return "", false
	}

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, "env-gemini", cfg.GeminiAPIKey)
}

func TestLoader_InvalidTOML(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, workDir, "token = [broken\n")

	l := noEnv(NewLoaderWithGlobalDir(workDir, t.TempDir()))
	_, err := l.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoader_MissingFilesAreFine(t *testing.T) {
	l := noEnv(NewLoaderWithGlobalDir(filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "nope")))

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

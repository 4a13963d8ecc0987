package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/orgai/internal/domain"
)

func TestLoadMissingFileUsesEmbeddedDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)

	model, err := cfg.GetDefaultModel()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultModelName, model.Name)
	assert.Equal(t, domain.DefaultModelID, model.ModelID)
	assert.Equal(t, "GROQ_API_KEY", model.AuthEnvVar)
	assert.Equal(t, 0.2, model.GetTemperature())
	assert.Equal(t, []string{"-e", "-c"}, cfg.GetExecutionShellArgs())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "loader must not write a config file")
}

func TestLoadPartialFileHydratesModels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("execution:\n  shell: /bin/sh\n"), 0o600))

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/bin/sh", cfg.GetExecutionShell())
	assert.Equal(t, domain.DefaultModelName, cfg.Preferences.DefaultModel)
	assert.NotEmpty(t, cfg.Models)
	assert.Equal(t, "1", cfg.ConfigFormatVersion)
}

func TestLoadCustomModelBecomesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
models:
  - name: local
    provider: ollama
    model_id: llama3
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Preferences.DefaultModel)
	assert.Len(t, cfg.Models, 1)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("models: [\n"), 0o600))

	_, err := NewFileLoader(path).Load(context.Background())
	assert.ErrorContains(t, err, "parse")
}

func TestPathHonorsEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(EnvConfigPath, path)

	loader := NewFileLoader("")
	assert.Equal(t, path, loader.Path())
	assert.Equal(t, filepath.Dir(path), loader.Dir())
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ORGAI_TEST_KEY=from-file\nORGAI_TEST_SET=from-file\n"), 0o600))
	t.Setenv("ORGAI_TEST_SET", "from-env")
	t.Setenv("ORGAI_TEST_KEY", "")
	require.NoError(t, os.Unsetenv("ORGAI_TEST_KEY"))

	loaded, err := LoadDotEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env"), loaded)
	assert.Equal(t, "from-file", os.Getenv("ORGAI_TEST_KEY"))
	assert.Equal(t, "from-env", os.Getenv("ORGAI_TEST_SET"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	loaded, err := LoadDotEnv(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

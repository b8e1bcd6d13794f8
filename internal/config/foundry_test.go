package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFoundryToml(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "foundry.toml"), []byte(content), 0644))
	return root
}

func TestLoadFoundryConfigDefaults(t *testing.T) {
	root := writeFoundryToml(t, "[profile.default]\n")

	cfg, err := LoadFoundryConfig(root)
	require.NoError(t, err)
	assert.Equal(t, "src", cfg.Src)
	assert.Equal(t, "test", cfg.Test)
	assert.Equal(t, "script", cfg.Script)
	assert.Equal(t, "out", cfg.Out)
	assert.Equal(t, []string{"lib"}, cfg.Libs)
	assert.Empty(t, cfg.Skip)
}

func TestLoadFoundryConfigCustomLayout(t *testing.T) {
	root := writeFoundryToml(t, `
[profile.default]
src = "contracts"
out = "artifacts"
libs = ["lib", "node_modules"]
skip = ["test", "script"]
`)

	cfg, err := LoadFoundryConfig(root)
	require.NoError(t, err)
	assert.Equal(t, "contracts", cfg.Src)
	assert.Equal(t, "artifacts", cfg.Out)
	assert.Equal(t, []string{"lib", "node_modules"}, cfg.Libs)
	assert.Equal(t, []string{"test", "script"}, cfg.Skip)
}

func TestLoadFoundryConfigProfileSelection(t *testing.T) {
	root := writeFoundryToml(t, `
[profile.default]
src = "contracts"

[profile.lite]
out = "out-lite"
`)

	t.Setenv("FOUNDRY_PROFILE", "lite")
	cfg, err := LoadFoundryConfig(root)
	require.NoError(t, err)

	// unset fields fall back to the default profile, then to convention
	assert.Equal(t, "contracts", cfg.Src)
	assert.Equal(t, "out-lite", cfg.Out)
}

func TestLoadFoundryConfigMissingFile(t *testing.T) {
	_, err := LoadFoundryConfig(t.TempDir())
	assert.Error(t, err)
}

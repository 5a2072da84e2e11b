package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DefaultsAndEnv(t *testing.T) {
	os.Clearenv()
	t.Cleanup(os.Clearenv)
	globalConfig = nil

	os.Setenv("DCHUNK_ALGORITHM", "blake3")
	os.Setenv("DCHUNK_LOG_JSON", "true")

	require.NoError(t, Initialize(""))

	cfg := GetConfig()
	assert.Equal(t, "blake3", cfg.Algorithm)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, "none", cfg.Compression)
}

func TestInitialize_YamlFile(t *testing.T) {
	globalConfig = nil
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "dchunk.yaml")

	yamlContent := `
algorithm: sha512
seed: "0xDEADBEEF"
compression: zstd
no_color: true
`
	require.NoError(t, os.WriteFile(configFile, []byte(yamlContent), 0644))
	require.NoError(t, Initialize(configFile))

	cfg := GetConfig()
	assert.Equal(t, "sha512", cfg.Algorithm)
	assert.Equal(t, "0xDEADBEEF", cfg.Seed)
	assert.Equal(t, "zstd", cfg.Compression)
	assert.True(t, cfg.NoColor)
}

func TestInitialize_HotReload(t *testing.T) {
	globalConfig = nil
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "dchunk.yaml")

	require.NoError(t, os.WriteFile(configFile, []byte(`algorithm: sha256`), 0644))
	require.NoError(t, Initialize(configFile))
	assert.Equal(t, "sha256", GetConfig().Algorithm)

	require.NoError(t, os.WriteFile(configFile, []byte(`algorithm: sha3-256`), 0644))

	// Wait for fsnotify to pick up the change.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, "sha3-256", GetConfig().Algorithm)
}

func TestGetConfig_WithoutInitialize(t *testing.T) {
	globalConfig = nil
	cfg := GetConfig()
	assert.Equal(t, "sha256", cfg.Algorithm)
	assert.Equal(t, "none", cfg.Compression)
}

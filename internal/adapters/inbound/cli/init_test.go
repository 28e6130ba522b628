package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/namefix/internal/adapters/outbound/config"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := run(t, "init", tmpDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(tmpDir, ".namefix.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "in_place: false")
	assert.Contains(t, string(data), "recursive: true")
}

func TestInitCmd_GeneratedConfigLoads(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := run(t, "init", tmpDir, "--languages", "go,python", "--in-place")
	require.NoError(t, err)

	cfg, err := config.New().Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "python"}, cfg.Languages)
	require.NotNil(t, cfg.InPlace)
	assert.True(t, *cfg.InPlace)
	require.NotNil(t, cfg.Backup)
	assert.True(t, *cfg.Backup)
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".namefix.yaml"), []byte("existing"), 0644))

	_, err := run(t, "init", tmpDir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".namefix.yaml"), []byte("old"), 0644))

	_, err := run(t, "init", tmpDir, "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(tmpDir, ".namefix.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "in_place:")
	assert.NotEqual(t, "old", string(data))
}

func TestInitCmd_InvalidLanguage(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := run(t, "init", tmpDir, "--languages", "cobol")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown language")
}

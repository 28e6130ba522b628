package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/abdidvp/namefix/internal/adapters/outbound/config"
	"github.com/abdidvp/namefix/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".namefix.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
exclude_paths: [generated, third_party]
languages: [go, python]
in_place: true
backup: true
recursive: false
workers: 4
respect_gitignore: false
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"generated", "third_party"}, cfg.ExcludePaths)
	assert.Equal(t, []string{"go", "python"}, cfg.Languages)
	require.NotNil(t, cfg.InPlace)
	assert.True(t, *cfg.InPlace)
	require.NotNil(t, cfg.Recursive)
	assert.False(t, *cfg.Recursive)
	require.NotNil(t, cfg.Workers)
	assert.Equal(t, 4, *cfg.Workers)
	assert.False(t, cfg.GitignoreEnabled())
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .namefix.yaml")
}

func TestYAMLLoader_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "inplace: true\n")
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .namefix.yaml")
}

func TestYAMLLoader_UnknownLanguage(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "languages: [go, cobol]\n")
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .namefix.yaml")
	assert.Contains(t, err.Error(), "cobol")
}

func TestYAMLLoader_NegativeWorkers(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "workers: -1\n")
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

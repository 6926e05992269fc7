package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig_Defaults(t *testing.T) {
	validateConfigPath = ""
	t.Setenv("CATALOG_URL", "")
	t.Setenv("LANDING_PAGE_URL", "")

	cfg, err := resolveConfig(validateCommand)
	require.NoError(t, err)

	assert.Equal(t, defaultCatalogURL, cfg.CatalogURL)
	assert.Equal(t, defaultPageURL, cfg.PageURL)
	assert.Empty(t, cfg.OutputDir)
	assert.False(t, cfg.UseBrowser)
}

func TestResolveConfig_EnvFallback(t *testing.T) {
	validateConfigPath = ""
	t.Setenv("CATALOG_URL", "https://internal.example.com/catalog.json")
	t.Setenv("LANDING_PAGE_URL", "https://staging.example.com/")

	cfg, err := resolveConfig(validateCommand)
	require.NoError(t, err)

	assert.Equal(t, "https://internal.example.com/catalog.json", cfg.CatalogURL)
	assert.Equal(t, "https://staging.example.com/", cfg.PageURL)
}

func TestResolveConfig_ConfigFile(t *testing.T) {
	content := `{
		"catalog_url": "https://example.com/versions.json",
		"page_url": "https://products.example.com/",
		"warn_unexpected": true
	}`
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	validateConfigPath = tmpFile
	t.Cleanup(func() { validateConfigPath = "" })

	cfg, err := resolveConfig(validateCommand)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/versions.json", cfg.CatalogURL)
	assert.Equal(t, "https://products.example.com/", cfg.PageURL)
	assert.True(t, cfg.WarnUnexpected)
}

func TestResolveConfig_BadConfigFile(t *testing.T) {
	validateConfigPath = "/nonexistent/config.json"
	t.Cleanup(func() { validateConfigPath = "" })

	_, err := resolveConfig(validateCommand)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

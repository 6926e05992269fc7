package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"catalog_url": "https://example.com/product_versions.json",
		"page_url": "https://products.example.com/",
		"output_dir": "out",
		"timeout_seconds": 15,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/product_versions.json", cfg.CatalogURL)
	assert.Equal(t, "https://products.example.com/", cfg.PageURL)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 15*time.Second, cfg.Timeout())
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_BadURL(t *testing.T) {
	cfg := &Config{
		CatalogURL: "not a url",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CatalogURL")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{
		TimeoutSeconds: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TimeoutSeconds")
}

func TestValidate_EmptyRuleSet(t *testing.T) {
	cfg := &Config{
		Rules: &Rules{},
	}

	err := cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		CatalogURL:     "https://example.com/product_versions.json",
		PageURL:        "https://products.example.com/",
		TimeoutSeconds: 30,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, []string{"-cli", ".ui", "-ui"}, rules.CLIUIMarkers)
	assert.Equal(t, []string{"net", "java", "nodejs-java", "python-net"}, rules.PlatformTokens)
	assert.Equal(t, "GroupDocs.", rules.VendorPrefix)
}

func TestEffectiveRules_Fallback(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultRules(), cfg.EffectiveRules())

	custom := &Rules{
		CLIUIMarkers:   []string{"-beta"},
		PlatformTokens: []string{"go"},
	}
	cfg.Rules = custom
	assert.Same(t, custom, cfg.EffectiveRules())
}

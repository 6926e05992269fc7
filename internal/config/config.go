// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	CatalogURL string `json:"catalog_url,omitempty" validate:"omitempty,url"` // Product-versions catalog URL
	PageURL    string `json:"page_url,omitempty" validate:"omitempty,url"`    // Landing page URL

	// Outputs
	OutputDir string `json:"output_dir,omitempty"` // Directory for validation_report.md and product_links.json

	// Behavior
	TimeoutSeconds int  `json:"timeout_seconds,omitempty" validate:"gte=0"` // HTTP timeout, 0 uses the fetch default
	UseBrowser     bool `json:"use_browser,omitempty"`                      // Render the landing page in a headless browser
	WarnUnexpected bool `json:"warn_unexpected,omitempty"`                  // Warn on platform links the catalog does not declare
	Verbose        bool `json:"verbose,omitempty"`                          // Print detailed debug information

	// Rule overrides (optional; zero value falls back to DefaultRules)
	Rules *Rules `json:"rules,omitempty"`
}

// Rules holds the matching rules the loader and extractor consult. Hoisted
// out of the components so tests can substitute alternate rule sets.
type Rules struct {
	// CLIUIMarkers are case-insensitive slug suffixes identifying CLI/GUI
	// product variants, which are excluded from landing-page validation.
	CLIUIMarkers []string `json:"cli_ui_markers" validate:"required,min=1,dive,required"`

	// PlatformTokens is the closed set of platform path segments recognized
	// in landing-page URLs, in report column order.
	PlatformTokens []string `json:"platform_tokens" validate:"required,min=1,dive,required"`

	// VendorPrefix is stripped from catalog display names before slugging.
	VendorPrefix string `json:"vendor_prefix"`
}

// DefaultRules returns the production rule set.
func DefaultRules() *Rules {
	return &Rules{
		CLIUIMarkers:   []string{"-cli", ".ui", "-ui"},
		PlatformTokens: []string{"net", "java", "nodejs-java", "python-net"},
		VendorPrefix:   "GroupDocs.",
	}
}

// Timeout returns the configured HTTP timeout, or zero when unset.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// EffectiveRules returns the configured rules, falling back to defaults.
func (c *Config) EffectiveRules() *Rules {
	if c.Rules != nil {
		return c.Rules
	}
	return DefaultRules()
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values, including any
// rule overrides.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

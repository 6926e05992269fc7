package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vladimir-litvinchik/landing-validator/internal/catalog"
	"github.com/vladimir-litvinchik/landing-validator/internal/config"
	"github.com/vladimir-litvinchik/landing-validator/internal/reconcile"
)

// Manifest is the JSON link inventory written alongside the Markdown report.
// Every non-excluded catalog product gets an entry carrying the family key
// plus one key per platform token, null when the page lacks the link.
type Manifest struct {
	GeneratedAt string                        `json:"generatedAt"`
	Links       map[string]map[string]*string `json:"links"`
}

// BuildManifest assembles the manifest from a reconciliation result.
func BuildManifest(result *reconcile.Result, rules *config.Rules, generatedAt time.Time) *Manifest {
	manifest := &Manifest{
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		Links:       make(map[string]map[string]*string),
	}

	for _, product := range result.Products {
		if product.CLIOrUI {
			continue
		}

		entry := make(map[string]*string, len(rules.PlatformTokens)+1)

		entry["family"] = nil
		if url, ok := result.Links.FamilyFor(product.Variations()); ok {
			entry["family"] = &url
		}

		for _, token := range rules.PlatformTokens {
			entry[token] = nil
			if url, ok := result.Links.PlatformFor(product.Variations(), catalog.Platform(token)); ok {
				entry[token] = &url
			}
		}

		manifest.Links[product.Name] = entry
	}

	return manifest
}

// WriteManifest builds the manifest and writes it under dir as indented JSON.
func WriteManifest(result *reconcile.Result, rules *config.Rules, generatedAt time.Time, dir string) error {
	manifest := BuildManifest(result, rules, generatedAt)

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode link manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write link manifest %s: %w", path, err)
	}
	return nil
}

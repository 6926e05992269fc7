package catalog

import (
	"strings"

	"github.com/vladimir-litvinchik/landing-validator/internal/config"
)

// Platform identifies a language/runtime binding of a product. The value is
// the path segment used in landing-page URLs.
type Platform string

// The production platform set, in report column order.
const (
	PlatformNet        Platform = "net"
	PlatformJava       Platform = "java"
	PlatformNodejsJava Platform = "nodejs-java"
	PlatformPythonNet  Platform = "python-net"
)

// Product is a single normalized catalog entry. Immutable after load.
type Product struct {
	Name        string     // URL slug, e.g. "viewer"
	DisplayName string     // catalog name, e.g. "GroupDocs.Viewer"
	Platforms   []Platform // declared platforms, de-duplicated, catalog order
	CLIOrUI     bool       // matched a CLI/UI marker; excluded from validation
}

// Variations returns the slugs to try when looking the product up in the
// extracted link map. A slug ending in a variant suffix also tries the base
// product slug.
func (p Product) Variations() []string {
	variations := []string{p.Name}
	if base, ok := strings.CutSuffix(p.Name, "-ui"); ok {
		variations = append(variations, base)
	}
	if base, ok := strings.CutSuffix(p.Name, "-cli"); ok {
		variations = append(variations, base)
	}
	return variations
}

// Slug normalizes a catalog display name into a landing-page URL slug:
// the vendor prefix is stripped, the rest lowercased, dots become hyphens.
func Slug(displayName, vendorPrefix string) string {
	name := displayName
	if vendorPrefix != "" {
		name = strings.ReplaceAll(name, vendorPrefix, "")
	}
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, ".", "-")
}

// IsCLIOrUI reports whether a catalog display name matches one of the
// CLI/UI markers (case-insensitive suffix match).
func IsCLIOrUI(displayName string, markers []string) bool {
	lower := strings.ToLower(displayName)
	for _, marker := range markers {
		if strings.HasSuffix(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// Filter drops CLI/UI products from the list. Matched entries are removed
// entirely, never merged into their base product. Idempotent.
func Filter(products []Product) []Product {
	kept := make([]Product, 0, len(products))
	for _, p := range products {
		if p.CLIOrUI {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// normalizePlatforms maps raw platform tokens onto the recognized set,
// preserving catalog order and dropping duplicates and unknown tokens.
func normalizePlatforms(raw []string, rules *config.Rules) []Platform {
	recognized := make(map[string]bool, len(rules.PlatformTokens))
	for _, token := range rules.PlatformTokens {
		recognized[token] = true
	}

	seen := make(map[Platform]bool, len(raw))
	platforms := make([]Platform, 0, len(raw))
	for _, token := range raw {
		if !recognized[token] {
			continue
		}
		p := Platform(token)
		if seen[p] {
			continue
		}
		seen[p] = true
		platforms = append(platforms, p)
	}
	return platforms
}

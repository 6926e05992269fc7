package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/vladimir-litvinchik/landing-validator/internal/config"
	"github.com/vladimir-litvinchik/landing-validator/internal/fetch"
)

// catalogSchema is the wire contract for the product-versions document:
// an array of entries carrying a product name and its declared platforms.
const catalogSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"platforms": {
				"type": "array",
				"items": {"type": "string"}
			}
		}
	}
}`

// rawProduct mirrors one catalog entry as found on the wire.
type rawProduct struct {
	Name      string   `json:"name"`
	Platforms []string `json:"platforms"`
}

// Load fetches the catalog from url and parses it. A fetch failure or a
// malformed document aborts the run; there is exactly one attempt.
func Load(ctx context.Context, url string, opts *fetch.Options, rules *config.Rules) ([]Product, error) {
	result, err := fetch.URL(ctx, url, opts)
	if err != nil {
		return nil, err
	}
	return Parse([]byte(result.Body), rules)
}

// Parse validates the raw catalog document against its schema and produces
// the ordered, de-duplicated product list. CLI/UI entries are retained with
// CLIOrUI set; callers exclude them with Filter before reconciliation.
func Parse(data []byte, rules *config.Rules) ([]Product, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var raw []rawProduct
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{
			Message: "failed to decode catalog JSON",
			Cause:   err,
		}
	}

	seen := make(map[string]bool, len(raw))
	products := make([]Product, 0, len(raw))
	for _, entry := range raw {
		slug := Slug(entry.Name, rules.VendorPrefix)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true

		products = append(products, Product{
			Name:        slug,
			DisplayName: entry.Name,
			Platforms:   normalizePlatforms(entry.Platforms, rules),
			CLIOrUI:     IsCLIOrUI(entry.Name, rules.CLIUIMarkers),
		})
	}

	return products, nil
}

// validateSchema checks the document shape before decoding, so malformed
// catalogs fail with field-level detail instead of a zero-value decode.
func validateSchema(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &ParseError{
			Message: "catalog is not valid JSON",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	for i, desc := range result.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf("%s: %s", field, desc.Description()))
	}

	return &ParseError{
		Message: fmt.Sprintf("catalog schema violation: %s", sb.String()),
	}
}

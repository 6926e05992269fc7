// Package report renders the reconciliation result into the two output
// artifacts: a Markdown report for humans and a JSON link manifest for
// downstream tooling. The renderers are independent; a write failure in one
// never stops the other.
package report

import "time"

// Meta carries run metadata shared by both renderers.
type Meta struct {
	GeneratedAt time.Time
	RunID       string
	PageURL     string
}

// Default output file names, written to the working directory.
const (
	MarkdownFileName = "validation_report.md"
	ManifestFileName = "product_links.json"
)

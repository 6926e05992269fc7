// Package reconcile diffs the expected product list against the links
// extracted from the landing page. Findings are data, never errors: a
// failing validation still produces a full result for the reporters.
package reconcile

import (
	"github.com/vladimir-litvinchik/landing-validator/internal/catalog"
	"github.com/vladimir-litvinchik/landing-validator/internal/extraction"
)

// Severity classifies how a finding affects the exit code. Only
// error-severity issues make the run fail.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Kind identifies the discrepancy a finding describes.
type Kind string

const (
	KindMissingFamilyLink      Kind = "missing-family-link"
	KindMissingPlatformLink    Kind = "missing-platform-link"
	KindUnexpectedPlatformLink Kind = "unexpected-platform-link"
)

// Issue is a single discrepancy between the catalog and the landing page.
type Issue struct {
	Severity Severity         `json:"severity"`
	Product  string           `json:"product"` // catalog display name
	Kind     Kind             `json:"kind"`
	Platform catalog.Platform `json:"platform,omitempty"`
	Detail   string           `json:"detail"`
}

// Counts summarizes a reconciliation for the stdout summary and report header.
type Counts struct {
	Products      int // products validated (CLI/UI variants excluded)
	FamilyLinks   int // family links found on the page
	PlatformLinks int // platform links found on the page
	Errors        int
	Warnings      int
}

// Result is the complete outcome of one reconciliation. Constructed once,
// consumed read-only by the reporters.
type Result struct {
	Products []catalog.Product
	Links    *extraction.Links
	Issues   []Issue
	Counts   Counts
}

// HasErrors reports whether any error-severity issue exists. Warnings alone
// never fail the run.
func (r *Result) HasErrors() bool {
	return r.Counts.Errors > 0
}

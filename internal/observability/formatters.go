// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/vladimir-litvinchik/landing-validator/internal/catalog"
	"github.com/vladimir-litvinchik/landing-validator/internal/reconcile"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode and the final summary
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCatalog outputs a summary of the loaded catalog: how many products
// were found, how many were excluded as CLI/UI variants.
func (p *Printer) PrintCatalog(all, kept []catalog.Product) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total products:    %d\n", len(all)))
	sb.WriteString(fmt.Sprintf("CLI/UI excluded:   %d\n", len(all)-len(kept)))
	sb.WriteString(fmt.Sprintf("To validate:       %d\n\n", len(kept)))

	count := min(len(kept), maxItemsToShow)
	for i := 0; i < count; i++ {
		product := kept[i]
		sb.WriteString(fmt.Sprintf("  • %s (%s)", product.DisplayName, product.Name))
		if len(product.Platforms) > 0 {
			tokens := make([]string, len(product.Platforms))
			for j, platform := range product.Platforms {
				tokens[j] = string(platform)
			}
			sb.WriteString(fmt.Sprintf(": %s", strings.Join(tokens, ", ")))
		}
		sb.WriteString("\n")
	}
	if len(kept) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(kept)-maxItemsToShow))
	}

	p.printBox("PRODUCT CATALOG", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIssues outputs every finding, errors first.
func (p *Printer) PrintIssues(result *reconcile.Result) {
	if len(result.Issues) == 0 {
		return
	}

	var sb strings.Builder
	for _, severity := range []reconcile.Severity{reconcile.SeverityError, reconcile.SeverityWarning} {
		for _, issue := range result.Issues {
			if issue.Severity == severity {
				sb.WriteString(fmt.Sprintf("[%s] %s\n", severity, issue.Detail))
			}
		}
	}

	p.printBox("VALIDATION ISSUES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the final counts. Always shown, verbose or not.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(result *reconcile.Result) {
	counts := result.Counts
	fmt.Fprintf(p.out, "Products validated: %d\n", counts.Products)
	fmt.Fprintf(p.out, "Links found:        %d\n", counts.FamilyLinks+counts.PlatformLinks)
	fmt.Fprintf(p.out, "Errors:             %d\n", counts.Errors)
	fmt.Fprintf(p.out, "Warnings:           %d\n", counts.Warnings)

	if result.HasErrors() {
		fmt.Fprintln(p.out, "\nValidation failed.")
	} else {
		fmt.Fprintln(p.out, "\nAll validations passed.")
	}
}

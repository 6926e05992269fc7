package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vladimir-litvinchik/landing-validator/internal/catalog"
	"github.com/vladimir-litvinchik/landing-validator/internal/config"
	"github.com/vladimir-litvinchik/landing-validator/internal/reconcile"
)

// platformHeaders maps platform tokens to their table column titles.
// Unlisted tokens fall back to the raw token.
var platformHeaders = map[string]string{
	"net":         ".NET",
	"java":        "Java",
	"nodejs-java": "Node.js via Java",
	"python-net":  "Python via .NET",
}

// RenderMarkdown produces the full Markdown report. Table rows follow the
// catalog's product order.
func RenderMarkdown(result *reconcile.Result, rules *config.Rules, meta Meta) string {
	var sb strings.Builder

	sb.WriteString("# Landing Page Links Validation Report\n\n")
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n", meta.GeneratedAt.Format("2006-01-02 15:04:05")))
	if meta.RunID != "" {
		sb.WriteString(fmt.Sprintf("**Run ID:** %s\n", meta.RunID))
	}
	sb.WriteString(fmt.Sprintf("**Landing Page:** %s\n\n", meta.PageURL))

	writeSummary(&sb, result)
	writeFamilyTable(&sb, result)
	writePlatformTable(&sb, result, rules)
	writeIssues(&sb, result)

	return sb.String()
}

// WriteMarkdown renders the report and writes it under dir.
func WriteMarkdown(result *reconcile.Result, rules *config.Rules, meta Meta, dir string) error {
	path := filepath.Join(dir, MarkdownFileName)
	content := RenderMarkdown(result, rules, meta)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write markdown report %s: %w", path, err)
	}
	return nil
}

func writeSummary(sb *strings.Builder, result *reconcile.Result) {
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Products Validated:** %d\n", result.Counts.Products))
	sb.WriteString(fmt.Sprintf("- **Family Links Found:** %d\n", result.Counts.FamilyLinks))
	sb.WriteString(fmt.Sprintf("- **Platform Links Found:** %d\n", result.Counts.PlatformLinks))
	sb.WriteString(fmt.Sprintf("- **Errors:** %d\n", result.Counts.Errors))
	sb.WriteString(fmt.Sprintf("- **Warnings:** %d\n\n", result.Counts.Warnings))
	sb.WriteString("---\n\n")
}

func writeFamilyTable(sb *strings.Builder, result *reconcile.Result) {
	sb.WriteString("## Found Links\n\n")
	sb.WriteString("### Family Links\n\n")
	sb.WriteString("| Product | Family Page |\n")
	sb.WriteString("|---------|-------------|\n")

	rows := 0
	for _, product := range result.Products {
		if product.CLIOrUI {
			continue
		}
		rows++
		cell := ""
		if url, ok := result.Links.FamilyFor(product.Variations()); ok {
			cell = fmt.Sprintf("[✓](%s)", url)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", product.DisplayName, cell))
	}
	if rows == 0 {
		sb.WriteString("| *No products found* | |\n")
	}
	sb.WriteString("\n")
}

func writePlatformTable(sb *strings.Builder, result *reconcile.Result, rules *config.Rules) {
	sb.WriteString("### Platform Links\n\n")

	header := "| Product |"
	separator := "|---------|"
	for _, token := range rules.PlatformTokens {
		title := platformHeaders[token]
		if title == "" {
			title = token
		}
		header += fmt.Sprintf(" %s |", title)
		separator += "----------------|"
	}
	sb.WriteString(header + "\n")
	sb.WriteString(separator + "\n")

	rows := 0
	for _, product := range result.Products {
		if product.CLIOrUI {
			continue
		}
		rows++
		row := fmt.Sprintf("| %s |", product.DisplayName)
		for _, token := range rules.PlatformTokens {
			cell := ""
			if url, ok := result.Links.PlatformFor(product.Variations(), catalog.Platform(token)); ok {
				cell = fmt.Sprintf("[✓](%s)", url)
			}
			row += fmt.Sprintf(" %s |", cell)
		}
		sb.WriteString(row + "\n")
	}
	if rows == 0 {
		sb.WriteString("| *No products found* |" + strings.Repeat(" |", len(rules.PlatformTokens)) + "\n")
	}
	sb.WriteString("\n")
}

func writeIssues(sb *strings.Builder, result *reconcile.Result) {
	sb.WriteString("## Errors & Warnings\n\n")

	if len(result.Issues) == 0 {
		sb.WriteString("No issues found.\n")
		return
	}

	if result.Counts.Errors > 0 {
		sb.WriteString("### Errors\n\n")
		for _, issue := range result.Issues {
			if issue.Severity == reconcile.SeverityError {
				sb.WriteString(fmt.Sprintf("- ❌ %s\n", issue.Detail))
			}
		}
		sb.WriteString("\n")
	}

	if result.Counts.Warnings > 0 {
		sb.WriteString("### Warnings\n\n")
		for _, issue := range result.Issues {
			if issue.Severity == reconcile.SeverityWarning {
				sb.WriteString(fmt.Sprintf("- ⚠️ %s\n", issue.Detail))
			}
		}
		sb.WriteString("\n")
	}
}

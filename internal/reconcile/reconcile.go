package reconcile

import (
	"fmt"
	"strings"

	"github.com/vladimir-litvinchik/landing-validator/internal/catalog"
	"github.com/vladimir-litvinchik/landing-validator/internal/config"
	"github.com/vladimir-litvinchik/landing-validator/internal/extraction"
)

// Rule inspects one expected product against the extracted links and emits
// any findings. Rules run per product, in slice order, so the issue sequence
// stays deterministic: catalog order first, then rule order, then platform
// token order within a rule.
type Rule struct {
	Name  string
	Check func(p catalog.Product, links *extraction.Links, rules *config.Rules) []Issue
}

// BaseRules returns the standard rule set: every expected product must have
// a family link and one link per declared platform. Base rules only emit
// errors; the warning severity is reserved for softer optional checks.
func BaseRules() []Rule {
	return []Rule{
		{Name: "missing-family-link", Check: checkFamilyLink},
		{Name: "missing-platform-link", Check: checkPlatformLinks},
	}
}

// UnexpectedPlatformRule flags platform links present on the page for a
// platform the catalog does not declare for that product. Off by default;
// the base contract treats undeclared platforms as out of scope.
func UnexpectedPlatformRule() Rule {
	return Rule{Name: "unexpected-platform-link", Check: checkUnexpectedPlatforms}
}

// Reconcile is a pure function over the loaded catalog and extracted links.
// CLI/UI variants are skipped even if a caller forgets to filter them; they
// never contribute issues or counts.
func Reconcile(products []catalog.Product, links *extraction.Links, rules *config.Rules, ruleSet []Rule) *Result {
	result := &Result{
		Products: products,
		Links:    links,
		Issues:   []Issue{},
	}

	for _, product := range products {
		if product.CLIOrUI {
			continue
		}
		result.Counts.Products++

		for _, rule := range ruleSet {
			result.Issues = append(result.Issues, rule.Check(product, links, rules)...)
		}
	}

	result.Counts.FamilyLinks = len(links.Family)
	for _, platformLinks := range links.Platform {
		result.Counts.PlatformLinks += len(platformLinks)
	}
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.Counts.Errors++
		case SeverityWarning:
			result.Counts.Warnings++
		}
	}

	return result
}

func checkFamilyLink(p catalog.Product, links *extraction.Links, _ *config.Rules) []Issue {
	variations := p.Variations()
	if _, ok := links.FamilyFor(variations); ok {
		return nil
	}
	return []Issue{{
		Severity: SeverityError,
		Product:  p.DisplayName,
		Kind:     KindMissingFamilyLink,
		Detail: fmt.Sprintf("product %q missing family link on landing page (tried: %s)",
			p.DisplayName, strings.Join(variations, ", ")),
	}}
}

func checkPlatformLinks(p catalog.Product, links *extraction.Links, rules *config.Rules) []Issue {
	declared := make(map[catalog.Platform]bool, len(p.Platforms))
	for _, platform := range p.Platforms {
		declared[platform] = true
	}

	var issues []Issue
	// Token order, not declaration order, keeps the sequence deterministic
	for _, token := range rules.PlatformTokens {
		platform := catalog.Platform(token)
		if !declared[platform] {
			continue
		}
		if _, ok := links.PlatformFor(p.Variations(), platform); ok {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityError,
			Product:  p.DisplayName,
			Kind:     KindMissingPlatformLink,
			Platform: platform,
			Detail: fmt.Sprintf("product %q missing %s link on landing page",
				p.DisplayName, platform),
		})
	}
	return issues
}

func checkUnexpectedPlatforms(p catalog.Product, links *extraction.Links, rules *config.Rules) []Issue {
	declared := make(map[catalog.Platform]bool, len(p.Platforms))
	for _, platform := range p.Platforms {
		declared[platform] = true
	}

	var issues []Issue
	for _, token := range rules.PlatformTokens {
		platform := catalog.Platform(token)
		if declared[platform] {
			continue
		}
		link, ok := links.PlatformFor(p.Variations(), platform)
		if !ok {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Product:  p.DisplayName,
			Kind:     KindUnexpectedPlatformLink,
			Platform: platform,
			Detail: fmt.Sprintf("landing page links %s for %q but the catalog does not declare it: %s",
				platform, p.DisplayName, link),
		})
	}
	return issues
}

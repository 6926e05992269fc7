package extraction

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/vladimir-litvinchik/landing-validator/internal/catalog"
	"github.com/vladimir-litvinchik/landing-validator/internal/config"
)

// Links holds every recognized link found on the landing page, keyed by the
// product slug embedded in the URL path. Values are absolute URLs.
// Immutable after extraction; duplicates collapse first-seen-wins.
type Links struct {
	Family   map[string]string
	Platform map[string]map[catalog.Platform]string
}

// NewLinks returns an empty link set.
func NewLinks() *Links {
	return &Links{
		Family:   make(map[string]string),
		Platform: make(map[string]map[catalog.Platform]string),
	}
}

// FamilyFor returns the family link for the first matching slug variation.
func (l *Links) FamilyFor(variations []string) (string, bool) {
	for _, slug := range variations {
		if link, ok := l.Family[slug]; ok {
			return link, true
		}
	}
	return "", false
}

// PlatformFor returns the platform link for the first matching slug variation.
func (l *Links) PlatformFor(variations []string, platform catalog.Platform) (string, bool) {
	for _, slug := range variations {
		if link, ok := l.Platform[slug][platform]; ok {
			return link, true
		}
	}
	return "", false
}

// Extract parses the landing-page HTML and classifies every anchor href
// against the two recognized path shapes: /{slug}/ is a family link and
// /{slug}/{platform}/ is a platform link for one of the configured platform
// tokens. Unrecognized paths and off-site links are ignored. An empty body
// yields an empty link set, not an error.
func Extract(html string, pageURL string, rules *config.Rules) (*Links, error) {
	base, err := url.Parse(pageURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, &ParseError{
			Message: "invalid landing page URL: " + pageURL,
			Cause:   err,
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ParseError{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	recognized := make(map[string]bool, len(rules.PlatformTokens))
	for _, token := range rules.PlatformTokens {
		recognized[token] = true
	}

	links := NewLinks()

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}

		linkURL, err := url.Parse(href)
		if err != nil {
			// Skip malformed URLs
			return
		}

		absolute := base.ResolveReference(linkURL)
		if absolute.Host != base.Host {
			return
		}

		slug, platform, kind := classifyPath(absolute.Path, recognized)
		switch kind {
		case kindFamily:
			if _, ok := links.Family[slug]; !ok {
				links.Family[slug] = absolute.String()
			}
		case kindPlatform:
			if links.Platform[slug] == nil {
				links.Platform[slug] = make(map[catalog.Platform]string)
			}
			if _, ok := links.Platform[slug][platform]; !ok {
				links.Platform[slug][platform] = absolute.String()
			}
		}
	})

	return links, nil
}

type linkKind int

const (
	kindNone linkKind = iota
	kindFamily
	kindPlatform
)

// classifyPath matches a URL path against /{slug}/ and /{slug}/{platform}/.
// Both shapes require the trailing slash; anything else is not a product link.
func classifyPath(path string, recognized map[string]bool) (string, catalog.Platform, linkKind) {
	if !strings.HasPrefix(path, "/") || !strings.HasSuffix(path, "/") {
		return "", "", kindNone
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	switch len(segments) {
	case 1:
		if segments[0] == "" {
			return "", "", kindNone
		}
		return strings.ToLower(segments[0]), "", kindFamily
	case 2:
		if segments[0] == "" || !recognized[segments[1]] {
			return "", "", kindNone
		}
		return strings.ToLower(segments[0]), catalog.Platform(segments[1]), kindPlatform
	default:
		return "", "", kindNone
	}
}

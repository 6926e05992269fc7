package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimir-litvinchik/landing-validator/internal/catalog"
	"github.com/vladimir-litvinchik/landing-validator/internal/config"
)

const pageURL = "https://products.groupdocs.com/"

func TestExtract_FamilyAndPlatformLinks(t *testing.T) {
	html := `
	<html><body>
		<div class="product-item">
			<a href="/viewer/">Viewer</a>
			<a href="/viewer/net/">Viewer for .NET</a>
			<a href="/viewer/java/">Viewer for Java</a>
		</div>
		<div class="product-item">
			<a href="/total/">Total</a>
			<a href="/total/python-net/">Total for Python</a>
		</div>
	</body></html>`

	links, err := Extract(html, pageURL, config.DefaultRules())
	require.NoError(t, err)

	assert.Equal(t, "https://products.groupdocs.com/viewer/", links.Family["viewer"])
	assert.Equal(t, "https://products.groupdocs.com/total/", links.Family["total"])
	assert.Equal(t, "https://products.groupdocs.com/viewer/net/", links.Platform["viewer"][catalog.PlatformNet])
	assert.Equal(t, "https://products.groupdocs.com/viewer/java/", links.Platform["viewer"][catalog.PlatformJava])
	assert.Equal(t, "https://products.groupdocs.com/total/python-net/", links.Platform["total"][catalog.PlatformPythonNet])
}

func TestExtract_AbsoluteSameHostLinks(t *testing.T) {
	html := `<a href="https://products.groupdocs.com/conversion/nodejs-java/">Conversion</a>`

	links, err := Extract(html, pageURL, config.DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, "https://products.groupdocs.com/conversion/nodejs-java/",
		links.Platform["conversion"][catalog.PlatformNodejsJava])
}

func TestExtract_IgnoresUnrecognizedPaths(t *testing.T) {
	html := `
	<a href="/viewer">no trailing slash</a>
	<a href="/viewer/cpp/">unknown platform</a>
	<a href="/viewer/net/docs/">too deep</a>
	<a href="/">root</a>
	<a href="#top">fragment</a>
	<a href="mailto:sales@groupdocs.com">mail</a>`

	links, err := Extract(html, pageURL, config.DefaultRules())
	require.NoError(t, err)
	assert.Empty(t, links.Family)
	assert.Empty(t, links.Platform)
}

func TestExtract_IgnoresOffSiteLinks(t *testing.T) {
	html := `<a href="https://docs.groupdocs.com/viewer/">docs</a>`

	links, err := Extract(html, pageURL, config.DefaultRules())
	require.NoError(t, err)
	assert.Empty(t, links.Family)
}

func TestExtract_FirstSeenWins(t *testing.T) {
	html := `
	<a href="/viewer/">first</a>
	<a href="/VIEWER/">second</a>
	<a href="/viewer/net/">first net</a>
	<a href="/viewer/net/">second net</a>`

	links, err := Extract(html, pageURL, config.DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, "https://products.groupdocs.com/viewer/", links.Family["viewer"])
	assert.Equal(t, "https://products.groupdocs.com/viewer/net/", links.Platform["viewer"][catalog.PlatformNet])
}

func TestExtract_EmptyBody(t *testing.T) {
	links, err := Extract("", pageURL, config.DefaultRules())
	require.NoError(t, err)
	assert.Empty(t, links.Family)
	assert.Empty(t, links.Platform)
}

func TestExtract_InvalidPageURL(t *testing.T) {
	_, err := Extract("<html></html>", "not-a-url", config.DefaultRules())
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestExtract_AlternateRuleSet(t *testing.T) {
	rules := &config.Rules{
		CLIUIMarkers:   []string{"-cli"},
		PlatformTokens: []string{"go"},
	}

	html := `
	<a href="/viewer/go/">go binding</a>
	<a href="/viewer/net/">net binding</a>`

	links, err := Extract(html, pageURL, rules)
	require.NoError(t, err)
	assert.Equal(t, "https://products.groupdocs.com/viewer/go/", links.Platform["viewer"][catalog.Platform("go")])
	_, ok := links.Platform["viewer"][catalog.PlatformNet]
	assert.False(t, ok)
}

func TestFamilyFor_TriesVariations(t *testing.T) {
	links := NewLinks()
	links.Family["editor"] = "https://products.groupdocs.com/editor/"

	url, ok := links.FamilyFor([]string{"editor-ui", "editor"})
	require.True(t, ok)
	assert.Equal(t, "https://products.groupdocs.com/editor/", url)

	_, ok = links.FamilyFor([]string{"viewer"})
	assert.False(t, ok)
}

func TestPlatformFor_TriesVariations(t *testing.T) {
	links := NewLinks()
	links.Platform["editor"] = map[catalog.Platform]string{
		catalog.PlatformNet: "https://products.groupdocs.com/editor/net/",
	}

	url, ok := links.PlatformFor([]string{"editor-ui", "editor"}, catalog.PlatformNet)
	require.True(t, ok)
	assert.Equal(t, "https://products.groupdocs.com/editor/net/", url)

	_, ok = links.PlatformFor([]string{"editor"}, catalog.PlatformJava)
	assert.False(t, ok)
}

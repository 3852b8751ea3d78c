package goquery_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
	"github.com/IdoAtNP/terraform-resource-docs/goquery"
)

// textRenderer renders blocks as plain text so tests can assert on
// extraction behavior without markdown conversion in the way.
type textRenderer struct{}

func (textRenderer) Render(blocks []tfdocs.Block, cfg tfdocs.RenderConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return tfdocs.RenderText(blocks), nil
}

func newExtractor() *goquery.Extractor {
	return goquery.NewExtractor(textRenderer{})
}

func page(body string) string {
	return `<html><body><div id="provider-doc">` + body + `</div></body></html>`
}

const resourcePage = `
<h1>aws_lb</h1>
<p>Provides a Load Balancer resource.</p>
<h2>Example Usage</h2>
<p>A minimal configuration.</p>
<pre><code class="language-hcl">resource "aws_lb" "this" {}</code></pre>
<h2>Argument Reference</h2>
<ul>
<li><a href="#name"><code>name</code></a> - (Optional) Name of the LB.</li>
<li><code>internal</code> - (Optional) If true, the LB will be internal.</li>
</ul>
<h2>Attribute Reference</h2>
<p>The following attributes are exported:</p>
`

func TestExtractor_ListSections(t *testing.T) {
	t.Parallel()

	t.Run("lists sections below a lone page title", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		names, err := e.ListSections(page(resourcePage))
		require.NoError(t, err)
		assert.Equal(t, []string{"Example Usage", "Argument Reference", "Attribute Reference"}, names)
	})

	t.Run("dedups repeated names at the section level", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		names, err := e.ListSections(page(`
<h2>Example Usage</h2><p>a</p>
<h2>Argument Reference</h2><p>b</p>
<h2>Example Usage</h2><p>c</p>
`))
		require.NoError(t, err)
		assert.Equal(t, []string{"Example Usage", "Argument Reference"}, names)
	})

	t.Run("empty document is invalid", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		_, err := e.ListSections("   ")
		assert.Equal(t, tfdocs.EINVALID, tfdocs.ErrorCode(err))
	})

	t.Run("registry placeholder page is not found", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		_, err := e.ListSections(`<html><body><h1>Page Not Found</h1></body></html>`)
		assert.Equal(t, tfdocs.ENOTFOUND, tfdocs.ErrorCode(err))
	})
}

func TestExtractor_ExtractSection(t *testing.T) {
	t.Parallel()

	t.Run("extracts a section by exact name", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		res, err := e.ExtractSection(page(resourcePage), tfdocs.SectionRequest{
			Name:   "Example Usage",
			Config: tfdocs.DefaultRenderConfig(),
		})
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.False(t, res.Merged)
		assert.Equal(t, 1, res.Matches)
		assert.Contains(t, res.Content, "Example Usage")
		assert.Contains(t, res.Content, "A minimal configuration.")
		assert.Contains(t, res.Content, `resource "aws_lb" "this" {}`)
		assert.NotContains(t, res.Content, "Argument Reference")
	})

	t.Run("name matching is case-insensitive", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		res, err := e.ExtractSection(page(resourcePage), tfdocs.SectionRequest{
			Name:   "example usage",
			Config: tfdocs.DefaultRenderConfig(),
		})
		require.NoError(t, err)
		assert.True(t, res.Found)
	})

	t.Run("prefix with separator matches", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		res, err := e.ExtractSection(page(`
<h2>Example Usage - Basic</h2><p>basic body</p>
<h2>Argument Reference</h2><p>args</p>
`), tfdocs.SectionRequest{Name: "Example Usage", Config: tfdocs.DefaultRenderConfig()})
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Contains(t, res.Content, "basic body")
	})

	t.Run("substring without separator does not match", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		res, err := e.ExtractSection(page(`
<h2>Argument Usage - with region</h2><p>body</p>
`), tfdocs.SectionRequest{Name: "Argument Reference", Config: tfdocs.DefaultRenderConfig()})
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Zero(t, res.Matches)
	})

	t.Run("invalid config is rejected even for an absent section", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		_, err := e.ExtractSection(page(resourcePage), tfdocs.SectionRequest{
			Name:   "Timeouts",
			Config: tfdocs.RenderConfig{BaseHeadingLevel: 0},
		})
		assert.Equal(t, tfdocs.EINVALID, tfdocs.ErrorCode(err))
	})

	t.Run("missing section is a result, not an error", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		res, err := e.ExtractSection(page(resourcePage), tfdocs.SectionRequest{
			Name:   "Timeouts",
			Config: tfdocs.DefaultRenderConfig(),
		})
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Empty(t, res.Content)
	})

	t.Run("first match wins without merging", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		res, err := e.ExtractSection(page(`
<h2>Example Usage</h2><p>first</p>
<h2>Example Usage</h2><p>second</p>
`), tfdocs.SectionRequest{Name: "Example Usage", Config: tfdocs.DefaultRenderConfig()})
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.False(t, res.Merged)
		assert.Equal(t, 2, res.Matches)
		assert.Contains(t, res.Content, "first")
		assert.NotContains(t, res.Content, "second")
	})

	t.Run("range stops at equal or shallower heading only", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		res, err := e.ExtractSection(page(`
<h2>Example Usage</h2>
<p>intro</p>
<h3>Nested Variant</h3>
<p>nested body</p>
<h2>Argument Reference</h2>
<p>args</p>
`), tfdocs.SectionRequest{Name: "Example Usage", Config: tfdocs.DefaultRenderConfig()})
		require.NoError(t, err)
		assert.Contains(t, res.Content, "Nested Variant")
		assert.Contains(t, res.Content, "nested body")
		assert.NotContains(t, res.Content, "args")
	})

	t.Run("headings inside wrappers are still located", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		res, err := e.ExtractSection(page(`
<div class="section"><h2>Example Usage</h2></div>
<div class="content"><p>wrapped body</p></div>
<div class="section"><h2>Argument Reference</h2></div>
<div class="content"><p>args</p></div>
`), tfdocs.SectionRequest{Name: "Example Usage", Config: tfdocs.DefaultRenderConfig()})
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Contains(t, res.Content, "wrapped body")
		assert.NotContains(t, res.Content, "args")
	})

	t.Run("title suffix replaces matched heading text", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		res, err := e.ExtractSection(page(resourcePage), tfdocs.SectionRequest{
			Name:        "Example Usage",
			TitleSuffix: "lb",
			Config:      tfdocs.DefaultRenderConfig(),
		})
		require.NoError(t, err)
		assert.Contains(t, res.Content, "Example Usage: lb")
	})
}

func TestExtractor_Merge(t *testing.T) {
	t.Parallel()

	const variants = `
<h2>Example Usage - Basic</h2>
<pre><code>resource "a" "b" {}</code></pre>
<h2>Example Usage - With Logging</h2>
<pre><code>resource "c" "d" {}</code></pre>
<h2>Example Usage</h2>
<pre><code>resource "e" "f" {}</code></pre>
<h2>Argument Reference</h2>
<p>args</p>
`

	t.Run("merges repeated sections with labeled subsections", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		res, err := e.ExtractSection(page(variants), tfdocs.SectionRequest{
			Name:   "Example Usage",
			Merge:  true,
			Config: tfdocs.DefaultRenderConfig(),
		})
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.True(t, res.Merged)
		assert.Equal(t, 3, res.Matches)
		assert.Contains(t, res.Content, "Basic")
		assert.Contains(t, res.Content, "With Logging")
		assert.Contains(t, res.Content, "Example 3")
		assert.Contains(t, res.Content, `resource "a" "b" {}`)
		assert.Contains(t, res.Content, `resource "c" "d" {}`)
		assert.Contains(t, res.Content, `resource "e" "f" {}`)
		assert.NotContains(t, res.Content, "args")
	})

	t.Run("single match never reports merged", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		res, err := e.ExtractSection(page(resourcePage), tfdocs.SectionRequest{
			Name:   "Example Usage",
			Merge:  true,
			Config: tfdocs.DefaultRenderConfig(),
		})
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.False(t, res.Merged)
		assert.NotContains(t, res.Content, "Example 1")
	})
}

func TestExtractor_ExtractSections(t *testing.T) {
	t.Parallel()

	t.Run("reports each name independently", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		results, err := e.ExtractSections(page(resourcePage),
			[]string{"Example Usage", "Timeouts"}, tfdocs.DefaultRenderConfig())
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.True(t, results["Example Usage"].Found)
		assert.False(t, results["Timeouts"].Found)
	})

	t.Run("invalid config is rejected before extraction", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		_, err := e.ExtractSections(page(resourcePage),
			[]string{"Timeouts"}, tfdocs.RenderConfig{BaseHeadingLevel: 7})
		assert.Equal(t, tfdocs.EINVALID, tfdocs.ErrorCode(err))
	})

	t.Run("nil names extracts all top-level sections", func(t *testing.T) {
		t.Parallel()
		e := newExtractor()
		results, err := e.ExtractSections(page(`
<h2>Example Usage</h2><p>a</p>
<h2>Argument Reference</h2><p>b</p>
`), nil, tfdocs.DefaultRenderConfig())
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.True(t, results["Example Usage"].Found)
		assert.True(t, results["Argument Reference"].Found)
	})
}

func TestExtractor_SectionsHTML(t *testing.T) {
	t.Parallel()

	e := newExtractor()
	results, err := e.SectionsHTML(page(resourcePage), []string{"Argument Reference"})
	require.NoError(t, err)
	res := results["Argument Reference"]
	require.True(t, res.Found)
	assert.True(t, strings.HasPrefix(res.Content, "<h2>"))
	assert.Contains(t, res.Content, "<ul>")
	assert.Contains(t, res.Content, "<code>internal</code>")
	assert.NotContains(t, res.Content, "Attribute Reference")
}

func TestExtractor_ArgumentItems(t *testing.T) {
	t.Parallel()

	e := newExtractor()
	res, err := e.ExtractSection(page(resourcePage), tfdocs.SectionRequest{
		Name:   "Argument Reference",
		Config: tfdocs.DefaultRenderConfig(),
	})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Contains(t, res.Content, "name - (Optional) Name of the LB.")
	assert.Contains(t, res.Content, "internal - (Optional) If true, the LB will be internal.")
}

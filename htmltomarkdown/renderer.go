// Package htmltomarkdown renders extracted section blocks as markdown
// using the html-to-markdown conversion library for inline markup.
package htmltomarkdown

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// Ensure Renderer implements tfdocs.Renderer at compile time.
var _ tfdocs.Renderer = (*Renderer)(nil)

// Renderer converts block sequences into markdown. Rendering is a pure
// function of its inputs, so one Renderer serves concurrent callers.
type Renderer struct {
	conv *converter.Converter
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Renderer{conv: conv}
}

// Render produces markdown for the given blocks. When cfg.AsText is
// set it produces plain text instead. Heading levels are remapped so
// the shallowest heading lands on cfg.BaseHeadingLevel, preserving
// relative depth and clamping to h6.
func (r *Renderer) Render(blocks []tfdocs.Block, cfg tfdocs.RenderConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	if cfg.AsText {
		return tfdocs.RenderText(blocks), nil
	}

	offset := headingOffset(blocks, cfg.BaseHeadingLevel)

	var parts []string
	for _, b := range blocks {
		part, err := r.render(b, cfg, offset)
		if err != nil {
			return "", err
		}
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

func (r *Renderer) render(b tfdocs.Block, cfg tfdocs.RenderConfig, offset int) (string, error) {
	switch b.Kind {
	case tfdocs.BlockHeading:
		level := b.Level + offset
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		text, err := r.inlineOr(b.HTML, b.Text)
		if err != nil {
			return "", err
		}
		return strings.Repeat("#", level) + " " + text, nil
	case tfdocs.BlockParagraph:
		return r.inlineOr(b.HTML, b.Text)
	case tfdocs.BlockCode:
		lang := b.Lang
		if lang == "" {
			lang = cfg.DefaultCodeLang
		}
		return "```" + lang + "\n" + b.Text + "\n```", nil
	case tfdocs.BlockList:
		var sb strings.Builder
		if err := r.writeItems(&sb, b.Items, b.Ordered, cfg, 0); err != nil {
			return "", err
		}
		return strings.TrimRight(sb.String(), "\n"), nil
	case tfdocs.BlockQuote, tfdocs.BlockHTML:
		// the converter handles blockquote prefixes and tables itself
		md, err := r.conv.ConvertString(b.HTML)
		if err != nil {
			return "", tfdocs.Errorf(tfdocs.EINTERNAL, "markdown conversion failed: %v", err)
		}
		return strings.TrimSpace(md), nil
	}
	return "", tfdocs.Errorf(tfdocs.EINTERNAL, "unknown block kind %d", b.Kind)
}

func (r *Renderer) writeItems(sb *strings.Builder, items []tfdocs.ListItem, ordered bool, cfg tfdocs.RenderConfig, depth int) error {
	indent := strings.Repeat("  ", depth)
	for i, item := range items {
		marker := "-"
		if ordered {
			marker = fmt.Sprintf("%d.", i+1)
		}

		desc, err := r.inlineOr(item.HTML, item.Text)
		if err != nil {
			return err
		}

		line := indent + marker + " "
		switch {
		case item.Term != "" && cfg.BoldArgumentTerms:
			line += "**`" + item.Term + "`**"
		case item.Term != "":
			line += "`" + item.Term + "`"
		}
		if item.Term != "" && desc != "" {
			line += " - "
		}
		line += desc

		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteString("\n")

		if len(item.Children) > 0 {
			if err := r.writeItems(sb, item.Children, item.ChildrenOrdered, cfg, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// inlineOr converts inline HTML to a single line of markdown, falling
// back to the collapsed plain text when no markup was captured.
func (r *Renderer) inlineOr(html, text string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return text, nil
	}
	md, err := r.conv.ConvertString(html)
	if err != nil {
		return "", tfdocs.Errorf(tfdocs.EINTERNAL, "markdown conversion failed: %v", err)
	}
	return strings.Join(strings.Fields(md), " "), nil
}

// headingOffset computes the shift that maps the shallowest heading in
// blocks to base. Blocks without headings need no shift.
func headingOffset(blocks []tfdocs.Block, base int) int {
	min := 0
	for _, b := range blocks {
		if b.Kind != tfdocs.BlockHeading {
			continue
		}
		if min == 0 || b.Level < min {
			min = b.Level
		}
	}
	if min == 0 {
		return 0
	}
	return base - min
}

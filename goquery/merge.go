package goquery

import (
	"fmt"
	"strings"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// section assembles the block sequence for a set of matched headings.
// With merging off, or a single match, the output is the first match's
// heading followed by its content. With merging on and several matches,
// the output carries one top heading plus a labeled subsection heading
// before each occurrence, so that a later re-extraction of the merged
// output finds exactly one section. The second return value reports
// whether merging actually happened.
func (d *Document) section(matches []match, req tfdocs.SectionRequest) ([]tfdocs.Block, bool) {
	if len(matches) == 0 {
		return nil, false
	}

	level := matches[0].heading.level
	merged := req.Merge && len(matches) > 1

	title := matches[0].heading.text
	if merged {
		title = collapse(req.Name)
	}
	if req.TitleSuffix != "" {
		title = collapse(req.Name) + ": " + req.TitleSuffix
	}

	out := []tfdocs.Block{{Kind: tfdocs.BlockHeading, Level: level, Text: title}}

	if !merged {
		m := matches[0]
		return append(out, d.blocks(m.start, m.end)...), false
	}

	subLevel := level + 1
	if subLevel > 6 {
		subLevel = 6
	}
	for i, m := range matches {
		label := m.label
		if label == "" {
			label = fmt.Sprintf("Example %d", i+1)
		}
		out = append(out, tfdocs.Block{Kind: tfdocs.BlockHeading, Level: subLevel, Text: label})
		out = append(out, d.blocks(m.start, m.end)...)
	}
	return out, true
}

// fragmentHTML serializes a set of matched headings and their content
// as a raw HTML fragment, headings included, in document order.
func (d *Document) fragmentHTML(matches []match) string {
	var parts []string
	for _, m := range matches {
		parts = append(parts, outerHTML(d.list[m.heading.pos]))
		i := m.start
		for i < m.end {
			// descend into wrappers whose subtree crosses the boundary
			if d.end[i] > m.end {
				i++
				continue
			}
			parts = append(parts, outerHTML(d.list[i]))
			i = d.end[i]
		}
	}
	return strings.Join(parts, "\n")
}

package tfdocs

import "strings"

// RenderText renders blocks as plain text: markup stripped, whitespace
// collapsed, paragraph breaks preserved as blank lines. Code blocks keep
// their verbatim content; list items use a "•" bullet with two-space
// indentation per nesting level.
func RenderText(blocks []Block) string {
	var parts []string
	for _, b := range blocks {
		switch b.Kind {
		case BlockHeading, BlockParagraph, BlockQuote, BlockHTML:
			if b.Text != "" {
				parts = append(parts, b.Text)
			}
		case BlockCode:
			if code := strings.TrimRight(b.Text, "\n"); code != "" {
				parts = append(parts, code)
			}
		case BlockList:
			var sb strings.Builder
			writeTextItems(&sb, b.Items, 0)
			if s := strings.TrimRight(sb.String(), "\n"); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, "\n\n")
}

func writeTextItems(sb *strings.Builder, items []ListItem, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, item := range items {
		sb.WriteString(indent)
		sb.WriteString("• ")
		if item.Term != "" {
			sb.WriteString(item.Term)
			if item.Text != "" {
				sb.WriteString(" - ")
				sb.WriteString(item.Text)
			}
		} else {
			sb.WriteString(item.Text)
		}
		sb.WriteString("\n")
		if len(item.Children) > 0 {
			writeTextItems(sb, item.Children, depth+1)
		}
	}
}

package goquery

import (
	"strings"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
	"golang.org/x/net/html"
)

// blockTags are elements consumed whole during a range scan. Anything
// else is treated as a transparent container and descended into.
var blockTags = map[string]bool{
	"p":          true,
	"pre":        true,
	"ul":         true,
	"ol":         true,
	"dl":         true,
	"blockquote": true,
	"table":      true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
}

// blocks converts the node range [start, end) into typed blocks. The
// document is never mutated; all cleanup happens on rendered strings.
func (d *Document) blocks(start, end int) []tfdocs.Block {
	var out []tfdocs.Block
	i := start
	for i < end {
		n := d.list[i]
		if level := headingLevel(n.Data); level > 0 {
			out = append(out, tfdocs.Block{
				Kind:  tfdocs.BlockHeading,
				Level: level,
				Text:  collapseText(n),
				HTML:  innerHTML(n),
			})
			i = d.end[i]
			continue
		}
		if blockTags[n.Data] {
			if b, ok := buildBlock(n); ok {
				out = append(out, b)
			}
			i = d.end[i]
			continue
		}
		if hasBlockDescendant(n) {
			i++
			continue
		}
		// a container holding only inline content, e.g. an alert box
		if text := collapseText(n); text != "" {
			out = append(out, tfdocs.Block{
				Kind: tfdocs.BlockParagraph,
				Text: text,
				HTML: innerHTML(n),
			})
		}
		i = d.end[i]
	}
	return out
}

func buildBlock(n *html.Node) (tfdocs.Block, bool) {
	switch n.Data {
	case "p":
		text := collapseText(n)
		if text == "" {
			return tfdocs.Block{}, false
		}
		return tfdocs.Block{Kind: tfdocs.BlockParagraph, Text: text, HTML: innerHTML(n)}, true
	case "pre":
		return tfdocs.Block{
			Kind: tfdocs.BlockCode,
			Text: strings.Trim(rawText(n), "\n"),
			Lang: codeLang(n),
		}, true
	case "ul", "ol":
		items := listItems(n)
		if len(items) == 0 {
			return tfdocs.Block{}, false
		}
		return tfdocs.Block{Kind: tfdocs.BlockList, Ordered: n.Data == "ol", Items: items}, true
	case "dl":
		items := definitionItems(n)
		if len(items) == 0 {
			return tfdocs.Block{}, false
		}
		return tfdocs.Block{Kind: tfdocs.BlockList, Items: items}, true
	case "blockquote":
		text := collapseText(n)
		if text == "" {
			return tfdocs.Block{}, false
		}
		return tfdocs.Block{Kind: tfdocs.BlockQuote, Text: text, HTML: outerHTML(n)}, true
	case "table":
		return tfdocs.Block{Kind: tfdocs.BlockHTML, Text: collapseText(n), HTML: outerHTML(n)}, true
	}
	return tfdocs.Block{}, false
}

// listItems builds items from the li children of a ul or ol.
func listItems(list *html.Node) []tfdocs.ListItem {
	var items []tfdocs.ListItem
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		items = append(items, listItem(c))
	}
	return items
}

// listItem splits an li into its own content, an optional leading code
// term, and any nested sublist.
func listItem(li *html.Node) tfdocs.ListItem {
	var item tfdocs.ListItem

	// partition children into content nodes and nested lists
	var content []*html.Node
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
			item.Children = append(item.Children, listItems(c)...)
			item.ChildrenOrdered = c.Data == "ol"
			continue
		}
		content = append(content, c)
	}

	// unwrap a lone paragraph wrapper
	if p := loneParagraph(content); p != nil {
		content = childNodes(p)
	}

	if term, rest, ok := splitArgumentTerm(content); ok {
		item.Term = term
		content = rest
	}

	item.HTML = stripLeadingSeparator(renderNodes(content))
	item.Text = stripLeadingSeparator(collapseNodes(content))
	return item
}

// definitionItems pairs dt terms with their following dd descriptions.
func definitionItems(dl *html.Node) []tfdocs.ListItem {
	var items []tfdocs.ListItem
	for c := dl.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "dt":
			items = append(items, tfdocs.ListItem{Term: collapseText(c)})
		case "dd":
			if len(items) == 0 {
				items = append(items, tfdocs.ListItem{})
			}
			last := &items[len(items)-1]
			if last.HTML != "" {
				last.HTML += " "
				last.Text += " "
			}
			last.HTML += innerHTML(c)
			last.Text += collapseText(c)
		}
	}
	return items
}

// splitArgumentTerm detects the documentation convention of starting a
// list item with a code-styled argument name, optionally wrapped in a
// link: `name` - description. The term is returned separately so
// renderers can restyle it.
func splitArgumentTerm(content []*html.Node) (string, []*html.Node, bool) {
	i := 0
	for i < len(content) && isBlankText(content[i]) {
		i++
	}
	if i >= len(content) {
		return "", nil, false
	}
	n := content[i]
	if n.Type != html.ElementNode {
		return "", nil, false
	}
	switch n.Data {
	case "code":
		return collapseText(n), content[i+1:], true
	case "a":
		if code := loneCodeChild(n); code != nil {
			return collapseText(code), content[i+1:], true
		}
	}
	return "", nil, false
}

// loneCodeChild returns the single code element child of n, if the
// node holds nothing else of substance.
func loneCodeChild(n *html.Node) *html.Node {
	var code *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isBlankText(c) {
			continue
		}
		if c.Type == html.ElementNode && c.Data == "code" && code == nil {
			code = c
			continue
		}
		return nil
	}
	return code
}

// loneParagraph returns the single p element in content, if the other
// nodes are blank text.
func loneParagraph(content []*html.Node) *html.Node {
	var p *html.Node
	for _, c := range content {
		if isBlankText(c) {
			continue
		}
		if c.Type == html.ElementNode && c.Data == "p" && p == nil {
			p = c
			continue
		}
		return nil
	}
	return p
}

func isBlankText(n *html.Node) bool {
	return n.Type == html.TextNode && strings.TrimSpace(n.Data) == ""
}

// stripLeadingSeparator drops the " - " style separator that follows a
// detached argument term.
func stripLeadingSeparator(s string) string {
	s = strings.TrimLeft(s, " \t\n")
	for _, sep := range []string{"-", "–", "—", ":"} {
		if strings.HasPrefix(s, sep) {
			return strings.TrimLeft(strings.TrimPrefix(s, sep), " \t\n")
		}
	}
	return s
}

// codeLang extracts a language hint from class attributes on a pre or
// its nested code element.
func codeLang(pre *html.Node) string {
	if lang := langFromClass(pre); lang != "" {
		return lang
	}
	var found string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "code" {
			if lang := langFromClass(n); lang != "" {
				found = lang
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(pre)
	return found
}

func langFromClass(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(attr.Val) {
			for _, prefix := range []string{"language-", "lang-"} {
				if strings.HasPrefix(class, prefix) {
					return strings.TrimPrefix(class, prefix)
				}
			}
		}
	}
	return ""
}

// hasBlockDescendant reports whether n contains any block-level element.
func hasBlockDescendant(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if blockTags[c.Data] || hasBlockDescendant(c) {
			return true
		}
	}
	return false
}

func childNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

func renderNodes(nodes []*html.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		renderNode(&sb, n)
	}
	return sb.String()
}

func collapseNodes(nodes []*html.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		gatherText(n, &sb)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

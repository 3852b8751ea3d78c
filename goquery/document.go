// Package goquery implements section extraction from rendered
// documentation HTML. It builds a heading index over a flattened,
// document-order node list and locates heading-delimited content
// ranges by section name.
package goquery

import (
	"strings"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// contentContainerID is the element holding the documentation body on
// Terraform Registry pages.
const contentContainerID = "provider-doc"

// heading is one entry of the document's heading index.
type heading struct {
	pos   int // index into the flattened node list
	level int
	text  string // rendered text, whitespace-collapsed
}

// Document is a parsed documentation page. It holds a flattened,
// document-order list of element nodes with subtree-end indexes, so
// content ranges are plain index pairs even when headings sit inside
// wrapper elements. A Document is immutable once built.
type Document struct {
	list     []*html.Node
	end      []int // end[i] is the index just past list[i]'s subtree
	headings []heading
}

// Parse parses rendered HTML into a Document.
// Returns EINVALID for empty or unparseable input and ENOTFOUND when
// the page is the registry's "Page Not Found" placeholder.
func Parse(htmlStr string) (*Document, error) {
	if strings.TrimSpace(htmlStr) == "" {
		return nil, tfdocs.Errorf(tfdocs.EINVALID, "empty HTML document")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil, tfdocs.Errorf(tfdocs.EINVALID, "failed to parse HTML: %v", err)
	}

	container := doc.Find("#" + contentContainerID)
	if container.Length() == 0 && isNotFoundPage(doc) {
		return nil, tfdocs.Errorf(tfdocs.ENOTFOUND, "documentation page not found")
	}

	d := &Document{}
	d.flatten(contentRoot(doc, container))
	return d, nil
}

// Headings returns the document's heading index in document order.
func (d *Document) Headings() []tfdocs.Heading {
	out := make([]tfdocs.Heading, 0, len(d.headings))
	for _, h := range d.headings {
		out = append(out, tfdocs.Heading{Text: h.text, Level: h.level})
	}
	return out
}

// TopLevelSections returns the distinct heading texts at the section
// level, in document order.
func (d *Document) TopLevelSections() []string {
	level := d.sectionLevel()

	var names []string
	seen := make(map[string]bool)
	for _, h := range d.headings {
		if h.level != level {
			continue
		}
		key := strings.ToLower(h.text)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, h.text)
	}
	return names
}

// sectionLevel picks the heading level that delimits sections: the
// shallowest level present, unless it holds a single heading (the page
// title) and deeper headings exist.
func (d *Document) sectionLevel() int {
	var counts [7]int
	for _, h := range d.headings {
		counts[h.level]++
	}

	var levels []int
	for level := 1; level <= 6; level++ {
		if counts[level] > 0 {
			levels = append(levels, level)
		}
	}

	if len(levels) == 0 {
		return 0
	}
	if counts[levels[0]] == 1 && len(levels) > 1 {
		return levels[1]
	}
	return levels[0]
}

// contentRoot picks the node to flatten: the registry's documentation
// container when present, otherwise the body, otherwise the whole tree.
func contentRoot(doc *goquery.Document, container *goquery.Selection) *html.Node {
	if container.Length() > 0 {
		return container.Nodes[0]
	}
	if body := doc.Find("body"); body.Length() > 0 {
		return body.Nodes[0]
	}
	return doc.Selection.Nodes[0]
}

// isNotFoundPage detects the registry's "Page Not Found" placeholder.
func isNotFoundPage(doc *goquery.Document) bool {
	found := false
	doc.Find("h1").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), "Page Not Found") {
			found = true
			return false
		}
		return true
	})
	return found
}

// flatten records every element node under root in pre-order, together
// with its subtree-end index and any heading entries.
func (d *Document) flatten(root *html.Node) {
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			i := len(d.list)
			d.list = append(d.list, c)
			d.end = append(d.end, 0)
			if level := headingLevel(c.Data); level > 0 {
				d.headings = append(d.headings, heading{pos: i, level: level, text: collapseText(c)})
			}
			walk(c)
			d.end[i] = len(d.list)
		}
	}
	walk(root)
}

// headingLevel returns the level of a heading tag, 0 for non-headings.
func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	default:
		return 0
	}
}

// collapseText returns the node's text content with whitespace collapsed
// and leading/trailing whitespace trimmed.
func collapseText(n *html.Node) string {
	var sb strings.Builder
	gatherText(n, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// rawText returns the node's text content verbatim, preserving
// whitespace. Used for code blocks.
func rawText(n *html.Node) string {
	var sb strings.Builder
	gatherText(n, &sb)
	return sb.String()
}

func gatherText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		gatherText(c, sb)
	}
}

// renderNode serializes a node to HTML.
func renderNode(sb *strings.Builder, n *html.Node) {
	_ = html.Render(sb, n)
}

// innerHTML serializes a node's children to HTML.
func innerHTML(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(&sb, c)
	}
	return sb.String()
}

// outerHTML serializes a node including its own tag.
func outerHTML(n *html.Node) string {
	var sb strings.Builder
	renderNode(&sb, n)
	return sb.String()
}

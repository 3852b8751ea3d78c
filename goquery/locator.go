package goquery

import "strings"

// separators accepted between a section name and its variant label,
// e.g. "Example Usage - Basic". Substring matches without a separator
// never count.
var separators = []string{"-", "–", ":"}

// match is one heading occurrence satisfying a section name, together
// with its content range over the flattened node list. The range never
// contains a heading of level <= the matched heading's own level.
type match struct {
	heading heading
	start   int // first node past the heading's subtree
	end     int // node index of the terminating heading, or list length
	label   string // variant label from a prefix match, empty otherwise
}

// locate returns the heading occurrences matching name, in document
// order. An empty result means "section not present", not an error.
func (d *Document) locate(name string) []match {
	want := collapse(name)
	wantNorm := normalizeHeading(name)

	var out []match
	for _, h := range d.headings {
		if normalizeHeading(h.text) == wantNorm {
			out = append(out, d.newMatch(h, ""))
			continue
		}
		if label, ok := prefixLabel(h.text, want); ok {
			out = append(out, d.newMatch(h, label))
		}
	}
	return out
}

// newMatch computes the content range for a matched heading: from the
// node past the heading's subtree to the next heading of equal or
// higher significance.
func (d *Document) newMatch(h heading, label string) match {
	start := d.end[h.pos]
	end := len(d.list)
	for _, other := range d.headings {
		if other.pos > h.pos && other.level <= h.level {
			end = other.pos
			break
		}
	}
	if end < start {
		end = start
	}
	return match{heading: h, start: start, end: end, label: label}
}

// prefixLabel reports whether text begins with name followed by one of
// the accepted separators, returning the trailing variant label.
func prefixLabel(text, name string) (string, bool) {
	if name == "" || len(text) <= len(name) || !strings.EqualFold(text[:len(name)], name) {
		return "", false
	}
	rest := strings.TrimLeft(text[len(name):], " ")
	for _, sep := range separators {
		if strings.HasPrefix(rest, sep) {
			return strings.TrimSpace(strings.TrimPrefix(rest, sep)), true
		}
	}
	return "", false
}

// collapse normalizes whitespace without changing case.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeHeading prepares heading text for equality comparison:
// whitespace collapsed, trailing punctuation dropped, case folded.
func normalizeHeading(s string) string {
	s = collapse(s)
	s = strings.TrimRight(s, " :.-–—")
	return strings.ToLower(s)
}

package goquery

import (
	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// Ensure type implements interface.
var _ tfdocs.SectionExtractor = (*Extractor)(nil)

// Extractor extracts named sections from rendered documentation HTML.
// It parses the document fresh on every call, so a single instance is
// safe for concurrent use.
type Extractor struct {
	renderer tfdocs.Renderer
}

// NewExtractor returns an extractor that renders extracted content
// through renderer.
func NewExtractor(renderer tfdocs.Renderer) *Extractor {
	return &Extractor{renderer: renderer}
}

// ListSections returns the distinct top-level heading texts of the
// document in document order.
func (e *Extractor) ListSections(html string) ([]string, error) {
	d, err := Parse(html)
	if err != nil {
		return nil, err
	}
	return d.TopLevelSections(), nil
}

// ExtractSections extracts the named sections under the default policy
// (first match, no merging). A nil names slice extracts every top-level
// section. Each name gets a result; absence is reported per name, never
// as an error.
func (e *Extractor) ExtractSections(html string, names []string, cfg tfdocs.RenderConfig) (map[string]*tfdocs.SectionResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d, err := Parse(html)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = d.TopLevelSections()
	}

	out := make(map[string]*tfdocs.SectionResult, len(names))
	for _, name := range names {
		res, err := e.extract(d, tfdocs.SectionRequest{Name: name, Config: cfg})
		if err != nil {
			return nil, err
		}
		out[name] = res
	}
	return out, nil
}

// ExtractSection extracts a single section under the full request
// policy, including merging of repeated same-named sections.
func (e *Extractor) ExtractSection(html string, req tfdocs.SectionRequest) (*tfdocs.SectionResult, error) {
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}

	d, err := Parse(html)
	if err != nil {
		return nil, err
	}
	return e.extract(d, req)
}

// SectionsHTML returns the raw HTML fragments of the named sections,
// heading included. All matches for a name are part of its fragment.
func (e *Extractor) SectionsHTML(html string, names []string) (map[string]*tfdocs.SectionResult, error) {
	d, err := Parse(html)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = d.TopLevelSections()
	}

	out := make(map[string]*tfdocs.SectionResult, len(names))
	for _, name := range names {
		matches := d.locate(name)
		res := &tfdocs.SectionResult{Name: name, Matches: len(matches)}
		if len(matches) > 0 {
			res.Found = true
			res.Content = d.fragmentHTML(matches)
		}
		out[name] = res
	}
	return out, nil
}

func (e *Extractor) extract(d *Document, req tfdocs.SectionRequest) (*tfdocs.SectionResult, error) {
	matches := d.locate(req.Name)
	res := &tfdocs.SectionResult{Name: req.Name, Matches: len(matches)}
	if len(matches) == 0 {
		return res, nil
	}

	blocks, merged := d.section(matches, req)
	content, err := e.renderer.Render(blocks, req.Config)
	if err != nil {
		return nil, err
	}

	res.Found = true
	res.Merged = merged
	res.Content = content
	return res, nil
}

package mock

import (
	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

var _ tfdocs.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor is a mock implementation of tfdocs.SectionExtractor.
type SectionExtractor struct {
	ListSectionsFn    func(html string) ([]string, error)
	ExtractSectionsFn func(html string, names []string, cfg tfdocs.RenderConfig) (map[string]*tfdocs.SectionResult, error)
	ExtractSectionFn  func(html string, req tfdocs.SectionRequest) (*tfdocs.SectionResult, error)
	SectionsHTMLFn    func(html string, names []string) (map[string]*tfdocs.SectionResult, error)
}

func (e *SectionExtractor) ListSections(html string) ([]string, error) {
	return e.ListSectionsFn(html)
}

func (e *SectionExtractor) ExtractSections(html string, names []string, cfg tfdocs.RenderConfig) (map[string]*tfdocs.SectionResult, error) {
	return e.ExtractSectionsFn(html, names, cfg)
}

func (e *SectionExtractor) ExtractSection(html string, req tfdocs.SectionRequest) (*tfdocs.SectionResult, error) {
	return e.ExtractSectionFn(html, req)
}

func (e *SectionExtractor) SectionsHTML(html string, names []string) (map[string]*tfdocs.SectionResult, error) {
	return e.SectionsHTMLFn(html, names)
}

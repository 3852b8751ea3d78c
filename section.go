package tfdocs

// Heading is a single heading found in a documentation page.
type Heading struct {
	Text  string `json:"text"`
	Level int    `json:"level"` // 1 (most significant) through 6
}

// RenderConfig controls how an extracted section is rendered.
// Values are passed by value and never mutated by renderers.
type RenderConfig struct {
	// BaseHeadingLevel is the level the shallowest heading in the
	// section is remapped to. Must be between 1 and 6.
	BaseHeadingLevel int

	// BoldArgumentTerms renders argument-style list items as
	// "- **`term`** - description" instead of "- term - description".
	BoldArgumentTerms bool

	// AsText renders plain text instead of markdown: markup stripped,
	// whitespace collapsed, paragraph breaks preserved as blank lines.
	AsText bool

	// DefaultCodeLang is applied to fenced code blocks whose source
	// markup declares no language. Empty leaves the fence bare.
	DefaultCodeLang string
}

// DefaultRenderConfig returns a RenderConfig with the base heading
// level set to 1 and all other options off.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{BaseHeadingLevel: 1}
}

// Validate returns EINVALID if the configuration is unusable.
// Renderers call this before walking any content.
func (c RenderConfig) Validate() error {
	if c.BaseHeadingLevel < 1 || c.BaseHeadingLevel > 6 {
		return Errorf(EINVALID, "base heading level must be between 1 and 6, got %d", c.BaseHeadingLevel)
	}
	return nil
}

// SectionRequest describes a single named-section extraction.
type SectionRequest struct {
	// Name is the section name to search for, e.g. "Example Usage".
	// A heading matches if its text equals the name or begins with
	// the name followed by a separator ("Example Usage - Basic").
	Name string

	// Merge combines multiple same-named sections into one logical
	// section with a labeled subsection heading per occurrence.
	// When false, the first match in document order wins.
	Merge bool

	// TitleSuffix, if non-empty, is appended to the section's top
	// heading as ": suffix" (e.g. "Example Usage: lb").
	TitleSuffix string

	// Config controls rendering of the extracted content.
	Config RenderConfig
}

// SectionResult is the outcome of extracting one named section.
// Absence of the section is a normal result, not an error.
type SectionResult struct {
	Name    string `json:"name"`
	Found   bool   `json:"found"`
	Merged  bool   `json:"merged"`
	Matches int    `json:"matches"` // matching heading occurrences, including ignored ones
	Content string `json:"content,omitempty"`
}

// SectionExtractor extracts named sections from a rendered HTML document.
// Implementations parse the document fresh per call and retain no state,
// so a single extractor is safe for concurrent use.
type SectionExtractor interface {
	// ListSections returns the distinct top-level heading texts of the
	// document in document order.
	ListSections(html string) ([]string, error)

	// ExtractSections extracts the named sections, reporting found and
	// not-found independently per name. A nil names slice extracts all
	// top-level sections. Multiple matches for a name are resolved by
	// the default policy: first match in document order, no merging.
	// An invalid cfg is rejected before the document is examined.
	ExtractSections(html string, names []string, cfg RenderConfig) (map[string]*SectionResult, error)

	// ExtractSection extracts a single section under the full request
	// policy, including merging of repeated same-named sections.
	// An invalid req.Config is rejected before the document is examined.
	ExtractSection(html string, req SectionRequest) (*SectionResult, error)

	// SectionsHTML returns the raw HTML fragments of the named
	// sections, heading included, without markdown conversion.
	SectionsHTML(html string, names []string) (map[string]*SectionResult, error)
}

// Renderer converts an extracted block sequence into output text.
type Renderer interface {
	// Render produces markdown (or plain text when cfg.AsText is set)
	// for the given blocks. Pure function of its inputs.
	Render(blocks []Block, cfg RenderConfig) (string, error)
}

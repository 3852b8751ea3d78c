package tfdocs

import "context"

// SectionWriter persists extracted section markdown to files.
type SectionWriter interface {
	// WriteSection writes the content for one section kind (e.g.
	// "examples", "arguments") of a resource and returns the path of
	// the written file.
	WriteSection(ctx context.Context, url *ResourceURL, kind string, content string) (path string, err error)
}

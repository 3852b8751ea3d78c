package mock

import (
	"context"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

var _ tfdocs.SectionWriter = (*SectionWriter)(nil)

// SectionWriter is a mock implementation of tfdocs.SectionWriter.
type SectionWriter struct {
	WriteSectionFn func(ctx context.Context, url *tfdocs.ResourceURL, kind string, content string) (string, error)
}

func (w *SectionWriter) WriteSection(ctx context.Context, url *tfdocs.ResourceURL, kind string, content string) (string, error) {
	return w.WriteSectionFn(ctx, url, kind, content)
}

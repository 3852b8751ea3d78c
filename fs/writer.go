// Package fs provides file-based output for extracted documentation.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// Ensure Writer implements tfdocs.SectionWriter at compile time.
var _ tfdocs.SectionWriter = (*Writer)(nil)

// Writer writes extracted sections as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// SectionPath returns the relative file path for a resource's section,
// e.g. lb_examples.md.
func SectionPath(url *tfdocs.ResourceURL, kind string) string {
	return url.Resource + "_" + kind + ".md"
}

// FormatSection formats section content with YAML frontmatter recording
// where the content came from.
func FormatSection(url *tfdocs.ResourceURL, kind, content string, extracted time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(url.String())
	b.WriteString("\nresource: ")
	b.WriteString(url.Resource)
	b.WriteString("\nsection: ")
	b.WriteString(kind)
	b.WriteString("\nextracted: ")
	b.WriteString(extracted.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// WriteSection writes one section of a resource to disk and returns the
// written path. The write goes through a temp file and rename so a
// crashed run never leaves a half-written file behind.
func (w *Writer) WriteSection(ctx context.Context, url *tfdocs.ResourceURL, kind string, content string) (string, error) {
	if url == nil || url.Resource == "" {
		return "", tfdocs.Errorf(tfdocs.EINVALID, "resource URL required")
	}
	if kind == "" {
		return "", tfdocs.Errorf(tfdocs.EINVALID, "section kind required")
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, SectionPath(url, kind))
	formatted := FormatSection(url, kind, content, time.Now().UTC())

	tmpPath := fullPath + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(formatted), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	return fullPath, nil
}

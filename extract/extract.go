// Package extract orchestrates documentation extraction for Terraform
// Registry resources. It coordinates page fetching, caching, section
// extraction, and file output.
package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// Well-known section names on registry resource pages.
const (
	SectionExampleUsage      = "Example Usage"
	SectionArgumentReference = "Argument Reference"
)

// Section kinds used when writing extracted content to files.
const (
	KindExamples  = "examples"
	KindArguments = "arguments"
)

// ResourceDocs extracts documentation sections for Terraform Registry
// resources. Fetcher and Extractor are required; Cache, Writer, and
// RateLimiter are optional and skipped when nil.
type ResourceDocs struct {
	Fetcher     tfdocs.Fetcher
	Extractor   tfdocs.SectionExtractor
	Cache       tfdocs.PageCache
	Writer      tfdocs.SectionWriter
	RateLimiter *DomainLimiter
	RetryDelays []time.Duration
}

// PageHTML returns the rendered HTML for a resource page, together with
// the parsed resource address. The cache is consulted first; a fetch
// result is stored back so repeated extractions hit the network once.
func (r *ResourceDocs) PageHTML(ctx context.Context, rawURL string) (string, *tfdocs.ResourceURL, error) {
	ru, err := tfdocs.ParseResourceURL(rawURL)
	if err != nil {
		return "", nil, err
	}
	url := ru.String()

	if r.Cache != nil {
		page, err := r.Cache.GetPage(ctx, url)
		if err == nil {
			return page.HTML, ru, nil
		}
		if tfdocs.ErrorCode(err) != tfdocs.ENOTFOUND {
			return "", nil, err
		}
	}

	if r.RateLimiter != nil {
		if err := r.RateLimiter.Wait(ctx, "registry.terraform.io"); err != nil {
			return "", nil, err
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := fetchWithRetryDelays(ctx, url, r.Fetcher.Fetch, nil, delays)
	if err != nil {
		return "", nil, err
	}

	if r.Cache != nil {
		page := &tfdocs.CachedPage{
			URL:         url,
			HTML:        html,
			ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(html)),
		}
		if err := r.Cache.PutPage(ctx, page); err != nil {
			return "", nil, err
		}
	}

	return html, ru, nil
}

// ListSections returns the top-level section names on a resource page.
func (r *ResourceDocs) ListSections(ctx context.Context, rawURL string) ([]string, error) {
	html, _, err := r.PageHTML(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return r.Extractor.ListSections(html)
}

// ExtractSection extracts one named section from a resource page under
// the full request policy.
func (r *ResourceDocs) ExtractSection(ctx context.Context, rawURL string, req tfdocs.SectionRequest) (*tfdocs.SectionResult, error) {
	html, _, err := r.PageHTML(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return r.Extractor.ExtractSection(html, req)
}

// ExtractSections extracts the named sections under the default policy.
// A nil names slice extracts every top-level section.
func (r *ResourceDocs) ExtractSections(ctx context.Context, rawURL string, names []string, cfg tfdocs.RenderConfig) (map[string]*tfdocs.SectionResult, error) {
	html, _, err := r.PageHTML(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return r.Extractor.ExtractSections(html, names, cfg)
}

// ExtractExamples extracts the resource's "Example Usage" section,
// merging repeated example sections and fencing unlabeled code as HCL.
func (r *ResourceDocs) ExtractExamples(ctx context.Context, rawURL string, cfg tfdocs.RenderConfig) (*tfdocs.SectionResult, error) {
	html, ru, err := r.PageHTML(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return r.Extractor.ExtractSection(html, ExampleUsageRequest(ru.Resource, cfg))
}

// ExtractArguments extracts the resource's "Argument Reference" section
// with argument names emphasized.
func (r *ResourceDocs) ExtractArguments(ctx context.Context, rawURL string, cfg tfdocs.RenderConfig) (*tfdocs.SectionResult, error) {
	html, _, err := r.PageHTML(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return r.Extractor.ExtractSection(html, ArgumentReferenceRequest(cfg))
}

// ExtractAll extracts both well-known sections of a resource page.
// Absence of either section is reported per name, not as an error.
func (r *ResourceDocs) ExtractAll(ctx context.Context, rawURL string, cfg tfdocs.RenderConfig) (map[string]*tfdocs.SectionResult, error) {
	html, ru, err := r.PageHTML(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	examples, err := r.Extractor.ExtractSection(html, ExampleUsageRequest(ru.Resource, cfg))
	if err != nil {
		return nil, err
	}
	arguments, err := r.Extractor.ExtractSection(html, ArgumentReferenceRequest(cfg))
	if err != nil {
		return nil, err
	}

	return map[string]*tfdocs.SectionResult{
		SectionExampleUsage:      examples,
		SectionArgumentReference: arguments,
	}, nil
}

// SaveToFiles extracts both well-known sections and writes each found
// section through the configured writer. It returns the written paths.
// Returns ENOTFOUND when neither section is present on the page.
func (r *ResourceDocs) SaveToFiles(ctx context.Context, rawURL string, cfg tfdocs.RenderConfig) ([]string, error) {
	if r.Writer == nil {
		return nil, tfdocs.Errorf(tfdocs.EINTERNAL, "no section writer configured")
	}

	html, ru, err := r.PageHTML(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, target := range []struct {
		kind string
		req  tfdocs.SectionRequest
	}{
		{KindExamples, ExampleUsageRequest(ru.Resource, cfg)},
		{KindArguments, ArgumentReferenceRequest(cfg)},
	} {
		res, err := r.Extractor.ExtractSection(html, target.req)
		if err != nil {
			return nil, err
		}
		if !res.Found {
			continue
		}
		path, err := r.Writer.WriteSection(ctx, ru, target.kind, res.Content)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	if len(paths) == 0 {
		return nil, tfdocs.Errorf(tfdocs.ENOTFOUND, "no known sections found for %q", ru.Resource)
	}
	return paths, nil
}

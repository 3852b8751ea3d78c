// Package rod fetches rendered HTML using Chrome browser automation.
// The Terraform Registry renders documentation client-side, so a plain
// HTTP GET returns an empty shell; a real browser is needed to observe
// the documentation content.
package rod

import (
	"context"
	"time"

	"github.com/go-rod/rod/lib/proto"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// DefaultWaitSelector is the element the fetcher waits for after page
// load: the registry's documentation container.
const DefaultWaitSelector = "#provider-doc"

// DefaultRenderTimeout bounds the wait for client-side rendering after
// the load event.
const DefaultRenderTimeout = 10 * time.Second

// Ensure Fetcher implements tfdocs.Fetcher at compile time.
var _ tfdocs.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using a headless Chrome
// browser. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager       *BrowserManager
	waitSelector  string
	renderTimeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithWaitSelector sets the CSS selector the fetcher waits for before
// capturing HTML. An empty selector disables the wait.
func WithWaitSelector(selector string) Option {
	return func(f *Fetcher) {
		f.waitSelector = selector
	}
}

// WithRenderTimeout bounds how long the fetcher waits for the selector
// to appear after the load event.
func WithRenderTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.renderTimeout = d
	}
}

// WithMaxPages sets how many pages are fetched before the underlying
// browser is recycled.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.manager.maxPages = n
	}
}

// NewFetcher creates a Fetcher backed by a freshly launched headless
// Chrome browser. Close must be called when the Fetcher is no longer
// needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}

	f := &Fetcher{
		manager:       manager,
		waitSelector:  DefaultWaitSelector,
		renderTimeout: DefaultRenderTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL, waits for the documentation container to
// render, and returns the page HTML. The wait is best effort: pages
// without the container (e.g. the registry's not-found placeholder) are
// returned as-is once the timeout passes, so their state is still
// observable downstream.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if f.waitSelector != "" {
		// ignore the timeout: the selector's absence is meaningful
		_, _ = page.Timeout(f.renderTimeout).Element(f.waitSelector)
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

package extract_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
	"github.com/IdoAtNP/terraform-resource-docs/extract"
	"github.com/IdoAtNP/terraform-resource-docs/mock"
)

const lbURL = "https://registry.terraform.io/providers/hashicorp/aws/latest/docs/resources/lb"

func passthroughExtractor() *mock.SectionExtractor {
	return &mock.SectionExtractor{
		ExtractSectionFn: func(html string, req tfdocs.SectionRequest) (*tfdocs.SectionResult, error) {
			return &tfdocs.SectionResult{Name: req.Name, Found: true, Matches: 1, Content: "# " + req.Name}, nil
		},
		ListSectionsFn: func(html string) ([]string, error) {
			return []string{"Example Usage", "Argument Reference"}, nil
		},
	}
}

func TestResourceDocs_PageHTML(t *testing.T) {
	t.Parallel()

	t.Run("fetches and caches the rendered page", func(t *testing.T) {
		t.Parallel()

		fetchCalls := 0
		store := map[string]*tfdocs.CachedPage{}

		docs := &extract.ResourceDocs{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					fetchCalls++
					return "<html>page</html>", nil
				},
			},
			Extractor: passthroughExtractor(),
			Cache: &mock.PageCache{
				GetPageFn: func(ctx context.Context, url string) (*tfdocs.CachedPage, error) {
					if p, ok := store[url]; ok {
						return p, nil
					}
					return nil, tfdocs.Errorf(tfdocs.ENOTFOUND, "page not cached")
				},
				PutPageFn: func(ctx context.Context, page *tfdocs.CachedPage) error {
					store[page.URL] = page
					return nil
				},
			},
		}

		html, ru, err := docs.PageHTML(context.Background(), lbURL)
		require.NoError(t, err)
		assert.Equal(t, "<html>page</html>", html)
		assert.Equal(t, "lb", ru.Resource)
		assert.Equal(t, 1, fetchCalls)

		// second call must come from the cache
		html, _, err = docs.PageHTML(context.Background(), lbURL)
		require.NoError(t, err)
		assert.Equal(t, "<html>page</html>", html)
		assert.Equal(t, 1, fetchCalls)

		cached := store[lbURL]
		require.NotNil(t, cached)
		assert.NotEmpty(t, cached.ContentHash)
	})

	t.Run("invalid URL is rejected before fetching", func(t *testing.T) {
		t.Parallel()

		docs := &extract.ResourceDocs{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					t.Fatal("fetch must not be called")
					return "", nil
				},
			},
			Extractor: passthroughExtractor(),
		}

		_, _, err := docs.PageHTML(context.Background(), "https://example.com/not-a-resource")
		assert.Equal(t, tfdocs.EINVALID, tfdocs.ErrorCode(err))
	})

	t.Run("retries transient fetch failures", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		docs := &extract.ResourceDocs{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					attempts++
					if attempts < 3 {
						return "", errors.New("connection reset")
					}
					return "<html>ok</html>", nil
				},
			},
			Extractor:   passthroughExtractor(),
			RetryDelays: []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond},
		}

		html, _, err := docs.PageHTML(context.Background(), lbURL)
		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 3, attempts)
	})

	t.Run("does not retry a missing page", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		docs := &extract.ResourceDocs{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					attempts++
					return "", tfdocs.Errorf(tfdocs.ENOTFOUND, "page not found: %s", url)
				},
			},
			Extractor:   passthroughExtractor(),
			RetryDelays: []time.Duration{time.Millisecond, time.Millisecond},
		}

		_, _, err := docs.PageHTML(context.Background(), lbURL)
		assert.Equal(t, tfdocs.ENOTFOUND, tfdocs.ErrorCode(err))
		assert.Equal(t, 1, attempts)
	})

	t.Run("gives up after exhausting retries", func(t *testing.T) {
		t.Parallel()

		docs := &extract.ResourceDocs{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "", errors.New("connection reset")
				},
			},
			Extractor:   passthroughExtractor(),
			RetryDelays: []time.Duration{time.Millisecond},
		}

		_, _, err := docs.PageHTML(context.Background(), lbURL)
		assert.Error(t, err)
	})
}

func TestResourceDocs_Policies(t *testing.T) {
	t.Parallel()

	t.Run("examples merge under a resource-titled heading", func(t *testing.T) {
		t.Parallel()

		var got tfdocs.SectionRequest
		docs := &extract.ResourceDocs{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) { return "<html/>", nil },
			},
			Extractor: &mock.SectionExtractor{
				ExtractSectionFn: func(html string, req tfdocs.SectionRequest) (*tfdocs.SectionResult, error) {
					got = req
					return &tfdocs.SectionResult{Name: req.Name, Found: true}, nil
				},
			},
		}

		_, err := docs.ExtractExamples(context.Background(), lbURL, tfdocs.DefaultRenderConfig())
		require.NoError(t, err)
		assert.Equal(t, "Example Usage", got.Name)
		assert.True(t, got.Merge)
		assert.Equal(t, "lb", got.TitleSuffix)
		assert.Equal(t, "hcl", got.Config.DefaultCodeLang)
	})

	t.Run("arguments render bold terms without merging", func(t *testing.T) {
		t.Parallel()

		var got tfdocs.SectionRequest
		docs := &extract.ResourceDocs{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) { return "<html/>", nil },
			},
			Extractor: &mock.SectionExtractor{
				ExtractSectionFn: func(html string, req tfdocs.SectionRequest) (*tfdocs.SectionResult, error) {
					got = req
					return &tfdocs.SectionResult{Name: req.Name, Found: true}, nil
				},
			},
		}

		_, err := docs.ExtractArguments(context.Background(), lbURL, tfdocs.DefaultRenderConfig())
		require.NoError(t, err)
		assert.Equal(t, "Argument Reference", got.Name)
		assert.False(t, got.Merge)
		assert.True(t, got.Config.BoldArgumentTerms)
	})

	t.Run("extract all reports both sections", func(t *testing.T) {
		t.Parallel()

		docs := &extract.ResourceDocs{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) { return "<html/>", nil },
			},
			Extractor: passthroughExtractor(),
		}

		results, err := docs.ExtractAll(context.Background(), lbURL, tfdocs.DefaultRenderConfig())
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.True(t, results[extract.SectionExampleUsage].Found)
		assert.True(t, results[extract.SectionArgumentReference].Found)
	})
}

func TestResourceDocs_SaveToFiles(t *testing.T) {
	t.Parallel()

	t.Run("writes each found section", func(t *testing.T) {
		t.Parallel()

		var kinds []string
		docs := &extract.ResourceDocs{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) { return "<html/>", nil },
			},
			Extractor: passthroughExtractor(),
			Writer: &mock.SectionWriter{
				WriteSectionFn: func(ctx context.Context, url *tfdocs.ResourceURL, kind string, content string) (string, error) {
					kinds = append(kinds, kind)
					return "/tmp/" + url.Resource + "_" + kind + ".md", nil
				},
			},
		}

		paths, err := docs.SaveToFiles(context.Background(), lbURL, tfdocs.DefaultRenderConfig())
		require.NoError(t, err)
		assert.Equal(t, []string{extract.KindExamples, extract.KindArguments}, kinds)
		assert.Equal(t, []string{"/tmp/lb_examples.md", "/tmp/lb_arguments.md"}, paths)
	})

	t.Run("no known sections is not found", func(t *testing.T) {
		t.Parallel()

		docs := &extract.ResourceDocs{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) { return "<html/>", nil },
			},
			Extractor: &mock.SectionExtractor{
				ExtractSectionFn: func(html string, req tfdocs.SectionRequest) (*tfdocs.SectionResult, error) {
					return &tfdocs.SectionResult{Name: req.Name}, nil
				},
			},
			Writer: &mock.SectionWriter{
				WriteSectionFn: func(ctx context.Context, url *tfdocs.ResourceURL, kind string, content string) (string, error) {
					t.Fatal("write must not be called")
					return "", nil
				},
			},
		}

		_, err := docs.SaveToFiles(context.Background(), lbURL, tfdocs.DefaultRenderConfig())
		assert.Equal(t, tfdocs.ENOTFOUND, tfdocs.ErrorCode(err))
	})
}

package extract_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
	"github.com/IdoAtNP/terraform-resource-docs/extract"
	"github.com/IdoAtNP/terraform-resource-docs/mock"
)

func batchDocs(t *testing.T, written *[]string) *extract.ResourceDocs {
	t.Helper()
	var mu sync.Mutex
	return &extract.ResourceDocs{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "<html/>", nil },
		},
		Extractor: passthroughExtractor(),
		Writer: &mock.SectionWriter{
			WriteSectionFn: func(ctx context.Context, url *tfdocs.ResourceURL, kind string, content string) (string, error) {
				mu.Lock()
				defer mu.Unlock()
				path := url.Resource + "_" + kind + ".md"
				*written = append(*written, path)
				return path, nil
			},
		},
	}
}

func TestBatchRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("extracts every unique resource", func(t *testing.T) {
		t.Parallel()

		var written []string
		runner := &extract.BatchRunner{
			Docs:        batchDocs(t, &written),
			Concurrency: 2,
			Config:      tfdocs.DefaultRenderConfig(),
		}

		result, err := runner.Run(context.Background(), []string{
			"https://registry.terraform.io/providers/hashicorp/aws/latest/docs/resources/lb",
			"https://registry.terraform.io/providers/hashicorp/aws/latest/docs/resources/instance",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Extracted)
		assert.Zero(t, result.Skipped)
		assert.Zero(t, result.Failed)
		assert.Len(t, written, 4) // two sections per resource
	})

	t.Run("duplicates and bad URLs are skipped", func(t *testing.T) {
		t.Parallel()

		var written []string
		runner := &extract.BatchRunner{
			Docs:   batchDocs(t, &written),
			Config: tfdocs.DefaultRenderConfig(),
		}

		result, err := runner.Run(context.Background(), []string{
			"https://registry.terraform.io/providers/hashicorp/aws/latest/docs/resources/lb",
			"https://registry.terraform.io/providers/hashicorp/aws/latest/docs/resources/lb",
			"https://example.com/nope",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Extracted)
		assert.Equal(t, 2, result.Skipped)
	})

	t.Run("progress events track completion", func(t *testing.T) {
		t.Parallel()

		var written []string
		runner := &extract.BatchRunner{
			Docs:   batchDocs(t, &written),
			Config: tfdocs.DefaultRenderConfig(),
		}

		var events []extract.ProgressType
		_, err := runner.Run(context.Background(), []string{
			"https://registry.terraform.io/providers/hashicorp/aws/latest/docs/resources/lb",
		}, func(e extract.ProgressEvent) {
			events = append(events, e.Type)
		})
		require.NoError(t, err)
		assert.Equal(t, []extract.ProgressType{
			extract.ProgressStarted,
			extract.ProgressCompleted,
			extract.ProgressFinished,
		}, events)
	})
}

package mock

import (
	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

var _ tfdocs.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of tfdocs.Renderer.
type Renderer struct {
	RenderFn func(blocks []tfdocs.Block, cfg tfdocs.RenderConfig) (string, error)
}

func (r *Renderer) Render(blocks []tfdocs.Block, cfg tfdocs.RenderConfig) (string, error) {
	return r.RenderFn(blocks, cfg)
}

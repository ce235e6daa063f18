package render

import (
	"context"

	"github.com/goliatone/go-formwidgets/pkg/model"
)

// Renderer converts a Form into a byte representation (HTML, terminal
// transcript, JSON payload).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.Form, options RenderOptions) ([]byte, error)
}

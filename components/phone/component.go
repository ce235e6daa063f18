package phone

import (
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Component wraps the phone handler, its configuration, and routing helpers.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides. The
// configured pattern is parsed up front so a bad pattern fails here rather
// than on every request.
func New(fns ...OptionFn) (*Component, error) {
	opts := NewOptions(fns...)
	if _, err := opts.Mask(); err != nil {
		return nil, fmt.Errorf("phone: %w", err)
	}
	return &Component{opts: opts}, nil
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Handler returns a net/http handler for format requests.
func (c *Component) Handler() http.Handler {
	if c == nil {
		return Handler()
	}
	return HandlerWithOptions(c.opts)
}

// RegisterRoutes registers the component handler under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}

// OpenAPI describes the component route mounted under basePath.
func (c *Component) OpenAPI(basePath string) *openapi3.T {
	return OpenAPIWithOptions(basePath, c.Options())
}

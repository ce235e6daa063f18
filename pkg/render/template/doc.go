// Package template defines the template rendering contract renderers depend
// on. The gotemplate subpackage provides the pongo2-backed implementation.
package template

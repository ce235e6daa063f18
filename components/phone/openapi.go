package phone

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formwidgets/pkg/phonemask"
)

// OpenAPIVersion is the document version advertised by OpenAPI.
const OpenAPIVersion = "1.0.0"

// OpenAPI returns an OpenAPI 3 document describing the component route
// mounted under basePath.
func OpenAPI(basePath string, fns ...OptionFn) *openapi3.T {
	return OpenAPIWithOptions(basePath, NewOptions(fns...))
}

// OpenAPIWithOptions is OpenAPI for a pre-built Options value.
func OpenAPIWithOptions(basePath string, opts Options) *openapi3.T {
	opts = NewOptions(func(o *Options) { *o = opts })

	placeholder := opts.Pattern
	if mask, err := opts.Mask(); err == nil {
		placeholder = mask.Placeholder()
	}

	keySchema := openapi3.NewStringSchema().WithEnum(phonemask.KeyBackspace)
	keySchema.Description = "Key pressed before the value was read. Only Backspace has an effect."

	result := openapi3.NewObjectSchema().
		WithProperty("value", openapi3.NewStringSchema()).
		WithProperty("digits", openapi3.NewStringSchema().WithPattern(`^\d*$`)).
		WithProperty("complete", openapi3.NewBoolSchema()).
		WithProperty("valid", openapi3.NewBoolSchema())
	result.Required = []string{"value", "digits", "complete", "valid"}

	envelope := openapi3.NewObjectSchema().WithProperty("data", result)
	envelope.Required = []string{"data"}

	request := openapi3.NewObjectSchema().
		WithProperty(opts.ValueParam, openapi3.NewStringSchema()).
		WithProperty(opts.KeyParam, keySchema)

	responses := func() *openapi3.Responses {
		return openapi3.NewResponses(
			openapi3.WithStatus(200, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().
					WithDescription("Value formatted as " + placeholder).
					WithJSONSchema(envelope),
			}),
			openapi3.WithStatus(400, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("Malformed request body"),
			}),
			openapi3.WithStatus(403, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("Rejected by guard"),
			}),
			openapi3.WithStatus(429, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("Rate limited"),
			}),
		)
	}

	get := openapi3.NewOperation()
	get.OperationID = "formatPhone"
	get.Summary = "Format a phone value"
	get.AddParameter(openapi3.NewQueryParameter(opts.ValueParam).
		WithDescription("Current field text, raw or partially formatted").
		WithSchema(openapi3.NewStringSchema()))
	get.AddParameter(openapi3.NewQueryParameter(opts.KeyParam).WithSchema(keySchema))
	get.Responses = responses()

	post := openapi3.NewOperation()
	post.OperationID = "formatPhoneBody"
	post.Summary = "Format a phone value sent in the request body"
	post.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithJSONSchema(request).
			WithFormDataSchema(request),
	}
	post.Responses = responses()

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   "formwidgets phone component",
			Version: OpenAPIVersion,
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath(mountPath(basePath, opts.RoutePath), &openapi3.PathItem{
				Get:  get,
				Post: post,
			}),
		),
	}
}

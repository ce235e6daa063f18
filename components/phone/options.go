package phone

import (
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/goliatone/go-formwidgets/pkg/phonemask"
)

const (
	defaultRoutePath  = "/api/phone/format"
	defaultValueParam = "value"
	defaultKeyParam   = "key"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath  string
	ValueParam string
	KeyParam   string
	Pattern    string
	// RateLimit is the sustained requests per second allowed per client IP.
	// Zero disables limiting.
	RateLimit rate.Limit
	RateBurst int
	Guard     GuardFunc
	Logger    zerolog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:  defaultRoutePath,
		ValueParam: defaultValueParam,
		KeyParam:   defaultKeyParam,
		Pattern:    phonemask.DefaultPattern,
		Logger:     zerolog.Nop(),
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.ValueParam == "" {
		opts.ValueParam = defaultValueParam
	}
	if opts.KeyParam == "" {
		opts.KeyParam = defaultKeyParam
	}
	if opts.Pattern == "" {
		opts.Pattern = phonemask.DefaultPattern
	}
	if opts.RateLimit < 0 {
		opts.RateLimit = 0
	}
	if opts.RateLimit > 0 && opts.RateBurst <= 0 {
		opts.RateBurst = 1
	}
	return opts
}

// Mask parses the configured pattern.
func (o Options) Mask() (phonemask.Mask, error) {
	return phonemask.ParsePattern(o.Pattern)
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithValueParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ValueParam = name
	}
}

func WithKeyParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.KeyParam = name
	}
}

func WithPattern(pattern string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Pattern = pattern
	}
}

func WithRateLimit(limit rate.Limit, burst int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RateLimit = limit
		o.RateBurst = burst
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(logger zerolog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

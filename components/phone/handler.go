package phone

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/phonemask"
)

// maxBodyBytes caps POST bodies.
const maxBodyBytes = 4 << 10

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Result is the formatted state of a phone value.
type Result struct {
	Value    string `json:"value"`
	Digits   string `json:"digits"`
	Complete bool   `json:"complete"`
	Valid    bool   `json:"valid"`
}

type resultResponse struct {
	Data Result `json:"data"`
}

type formatRequest struct {
	Value string
	Key   string
}

// Apply runs one event against value: Backspace replays the browser
// sequence (separator aid, character removal, reformat); anything else is
// treated as an input event on value.
func Apply(mask phonemask.Mask, value, key string) Result {
	field := phonemask.NewField(mask)
	if key == phonemask.KeyBackspace {
		field.Set(value)
		field.Backspace()
	} else {
		field.Input(value)
	}
	return Result{
		Value:    field.Value(),
		Digits:   field.Digits(),
		Complete: field.Complete(),
		Valid:    mask.Validate(field.Value()) == nil,
	}
}

// Handler builds a net/http handler with default options plus any overrides.
// It is an alias of NewHandler to match the recommended component API surface.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options
// value. An unparsable pattern makes every request fail with 500; use New to
// catch it at construction.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	mask, maskErr := opts.Mask()
	logger := opts.Logger

	var limiter *visitorLimiter
	if opts.RateLimit > 0 {
		limiter = newVisitorLimiter(opts.RateLimit, opts.RateBurst)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodPost:
		default:
			w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodHead, http.MethodPost}, ", "))
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("phone: guard rejected request")
				writeGuardError(w, err)
				return
			}
		}

		if limiter != nil && !limiter.allow(r) {
			logger.Debug().Str("client", clientIP(r)).Msg("phone: rate limited")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		if maskErr != nil {
			logger.Error().Err(maskErr).Str("pattern", opts.Pattern).Msg("phone: invalid mask pattern")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if r.Method == http.MethodPost {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		req, err := readRequest(r, opts)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		result := Apply(mask, req.Value, req.Key)
		logger.Debug().
			Str("key", req.Key).
			Int("digits", len(result.Digits)).
			Bool("complete", result.Complete).
			Msg("phone: formatted value")

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(resultResponse{Data: result})
	})
}

func readRequest(r *http.Request, opts Options) (formatRequest, error) {
	if r.Method != http.MethodPost {
		query := r.URL.Query()
		return formatRequest{
			Value: query.Get(opts.ValueParam),
			Key:   query.Get(opts.KeyParam),
		}, nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return formatRequest{}, err
		}
		return formatRequest{
			Value: body[opts.ValueParam],
			Key:   body[opts.KeyParam],
		}, nil
	}

	if err := r.ParseForm(); err != nil {
		return formatRequest{}, err
	}
	return formatRequest{
		Value: r.FormValue(opts.ValueParam),
		Key:   r.FormValue(opts.KeyParam),
	}, nil
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

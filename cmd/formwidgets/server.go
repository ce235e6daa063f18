package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	formwidgets "github.com/goliatone/go-formwidgets"
	"github.com/goliatone/go-formwidgets/components/phone"
	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/orchestrator"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formwidgets/pkg/renderers/vanilla"
)

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ title }}</title>
  <link rel="stylesheet" href="{{ stylesheet }}">
</head>
<body>
{{ form|safe }}
</body>
</html>
`

type serverConfig struct {
	BasePath  string
	RateLimit float64
	RateBurst int
	Logger    zerolog.Logger
	Orch      *orchestrator.Orchestrator
	Request   orchestrator.Request
	// Renderer renders the resolved form on every page view.
	Renderer render.Renderer
}

type server struct {
	cfg   serverConfig
	form  model.Form
	token string
	pages *gotemplate.Engine
}

// newServer wires the phone component, the form page and the static assets
// onto one mux.
func newServer(cfg serverConfig) (http.Handler, error) {
	basePath := "/" + strings.Trim(strings.TrimSpace(cfg.BasePath), "/")
	cfg.BasePath = basePath

	if cfg.Renderer == nil {
		renderer, err := vanilla.New()
		if err != nil {
			return nil, err
		}
		cfg.Renderer = renderer
	}

	component, err := phone.New(
		phone.WithLogger(cfg.Logger),
		phone.WithRateLimit(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	)
	if err != nil {
		return nil, err
	}

	form, err := cfg.Orch.Resolve(context.Background(), cfg.Request)
	if err != nil {
		return nil, err
	}
	form.Action = basePath
	form.Method = http.MethodPost

	pages, err := gotemplate.New(gotemplate.WithFS(vanilla.TemplatesFS()))
	if err != nil {
		return nil, err
	}

	s := &server{cfg: cfg, form: form, token: uuid.NewString(), pages: pages}

	mux := http.NewServeMux()
	if _, err := component.RegisterRoutes(mux, basePath); err != nil {
		return nil, err
	}
	mux.Handle("/runtime/", http.StripPrefix("/runtime/", http.FileServerFS(formwidgets.RuntimeAssetsFS())))
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServerFS(vanilla.AssetsFS())))
	mux.HandleFunc("/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, component.OpenAPI(basePath))
	})
	mux.HandleFunc(basePath, s.handleForm)
	if basePath != "/" {
		mux.HandleFunc(basePath+"/", s.handleForm)
	}

	return s.logRequests(mux), nil
}

func (s *server) handleForm(w http.ResponseWriter, r *http.Request) {
	if strings.TrimRight(r.URL.Path, "/") != strings.TrimRight(s.cfg.BasePath, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		s.renderPage(w, r, http.StatusOK, render.RenderOptions{})
	case http.MethodPost:
		s.handleSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (s *server) validToken(got string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(s.token)) == 1
}

func (s *server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if !s.validToken(r.PostForm.Get(render.DefaultCSRFField)) {
		s.cfg.Logger.Warn().Str("path", r.URL.Path).Msg("serve: csrf token mismatch")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	values := render.SubmissionValues(r.PostForm, render.DefaultCSRFField)

	cleaned, mapping := render.ValidateSubmission(s.form, values)
	if !mapping.Empty() {
		errs := make(map[string][]string, len(mapping.Fields)+1)
		for name, msgs := range mapping.Fields {
			errs[name] = msgs
		}
		if len(mapping.Form) > 0 {
			errs[""] = mapping.Form
		}
		s.cfg.Logger.Info().Int("errors", len(errs)).Msg("serve: submission rejected")
		s.renderPage(w, r, http.StatusUnprocessableEntity, render.RenderOptions{Values: values, Errors: errs})
		return
	}

	s.cfg.Logger.Info().Str("form", s.form.ID).Msg("serve: submission accepted")
	writeJSON(w, http.StatusOK, map[string]any{"data": cleaned})
}

func (s *server) renderPage(w http.ResponseWriter, r *http.Request, status int, opts render.RenderOptions) {
	opts.Hidden = render.MergeHiddenFields(opts.Hidden, render.CSRFToken("", s.token))

	form := s.form
	html, err := s.cfg.Renderer.Render(r.Context(), form, opts)
	if err != nil {
		s.cfg.Logger.Error().Err(err).Msg("serve: render form")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	page, err := s.pages.RenderString(pageTemplate, map[string]any{
		"title":      form.Title,
		"stylesheet": "/assets/" + vanilla.StylesheetName,
		"form":       string(html),
	})
	if err != nil {
		s.cfg.Logger.Error().Err(err).Msg("serve: render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(page))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.cfg.Logger.Debug().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("serve: request")
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

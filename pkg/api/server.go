package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/polyorder/pkg/buildinfo"
	"github.com/matzehuels/polyorder/pkg/circuit"
	"github.com/matzehuels/polyorder/pkg/errors"
	"github.com/matzehuels/polyorder/pkg/observability"
	"github.com/matzehuels/polyorder/pkg/pipeline"
	"github.com/matzehuels/polyorder/pkg/render"
	"github.com/matzehuels/polyorder/pkg/store"
)

// maxBodyBytes bounds a circuit upload.
const maxBodyBytes = 1 << 20

// Server handles API requests. Runner and Store are required.
type Server struct {
	Runner *pipeline.Runner
	Store  store.Store
	Logger *log.Logger

	// Options are the solve defaults; a max_paths query parameter may
	// lower MaxPaths per request.
	Options pipeline.Options

	// TTL is how long records are kept. Zero selects store.DefaultTTL.
	TTL time.Duration
}

// New returns a Server with default options.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{Runner: runner, Store: st, Logger: logger, TTL: store.DefaultTTL}
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/circuits", s.handleListCircuits)
		r.Get("/circuits/{name}", s.handleGetCircuit)
		r.Post("/solve", s.handleSolve)
		r.Get("/solve", s.handleListSolves)
		r.Get("/solve/{id}", s.handleGetSolve)
		r.Get("/solve/{id}/svg", s.handleSolveSVG)
	})
	return r
}

// observe reports every request to the HTTP hooks with its route pattern.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Get().Version,
	})
}

func (s *Server) handleListCircuits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"circuits": circuit.BuiltinNames()})
}

func (s *Server) handleGetCircuit(w http.ResponseWriter, r *http.Request) {
	c, err := circuit.Builtin(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	opts, err := s.requestOptions(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	c, err := circuit.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), circuit.FormatJSON)
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.Runner.Solve(r.Context(), c, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	rec := store.NewRecord(res, opts, s.ttl())
	if err := s.Store.Put(r.Context(), rec); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "store result"))
		return
	}
	s.Logger.Info("solved", "id", rec.ID, "circuit", c.Name, "orderings", len(res.Orderings), "cached", res.CacheInfo.ResultHit)

	w.Header().Set("Location", "/v1/solve/"+rec.ID)
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListSolves(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "limit must be between 1 and 100"))
			return
		}
		limit = n
	}
	recs, err := s.Store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if recs == nil {
		recs = []*store.Record{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"solves": recs})
}

func (s *Server) handleGetSolve(w http.ResponseWriter, r *http.Request) {
	rec, err := s.lookup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleSolveSVG(w http.ResponseWriter, r *http.Request) {
	rec, err := s.lookup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	idx := 0
	if v := r.URL.Query().Get("ordering"); v != "" {
		if idx, err = strconv.Atoi(v); err != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "ordering must be an integer"))
			return
		}
	}

	// The record keeps nets and gates only; re-solving with the record's
	// path limit recovers the edge-level paths, normally from the cache.
	opts := s.Options
	opts.Logger = s.Logger
	if rec.MaxPaths != 0 {
		opts.MaxPaths = rec.MaxPaths
	}
	res, err := s.Runner.Solve(r.Context(), rec.Circuit, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	nets, err := render.ResultNetworks(res, idx)
	if err != nil {
		s.writeError(w, err)
		return
	}

	svg, err := render.RenderSVG(r.Context(), render.ToDOT(nets, render.Options{Title: rec.Circuit.Name}))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func (s *Server) lookup(ctx context.Context, id string) (*store.Record, error) {
	if err := store.ValidateID(id); err != nil {
		return nil, err
	}
	return s.Store.Get(ctx, id)
}

// requestOptions applies the query parameters to the server defaults. The
// result is already defaulted, so its MaxPaths is the effective limit.
func (s *Server) requestOptions(r *http.Request) (pipeline.Options, error) {
	opts := s.Options
	opts.Logger = s.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	if v := r.URL.Query().Get("max_paths"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "max_paths must be a positive integer")
		}
		if opts.MaxPaths < 0 || n < opts.MaxPaths {
			opts.MaxPaths = n
		}
	}
	if r.URL.Query().Get("refresh") == "true" {
		opts.Refresh = true
	}
	return opts, nil
}

func (s *Server) ttl() time.Duration {
	if s.TTL == 0 {
		return store.DefaultTTL
	}
	return s.TTL
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

package formapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"

	"github.com/dmitrymomot/clubkit/pkg/autosave"
	"github.com/dmitrymomot/clubkit/pkg/logger"
	"github.com/dmitrymomot/clubkit/pkg/mask"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// Option configures the API.
type Option func(*API)

func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

func WithMasker(m *mask.Masker) Option {
	return func(a *API) {
		if m != nil {
			a.masker = m
		}
	}
}

// WithClock sets the clock behind the draft write limiter.
func WithClock(c clockwork.Clock) Option {
	return func(a *API) {
		if c != nil {
			a.clock = c
		}
	}
}

// WithHealthChecks registers readiness checks.
func WithHealthChecks(checks ...HealthCheck) Option {
	return func(a *API) { a.checks = append(a.checks, checks...) }
}

// API serves masks and drafts.
type API struct {
	cfg     Config
	store   autosave.Store
	masker  *mask.Masker
	log     *slog.Logger
	clock   clockwork.Clock
	checks  []HealthCheck
	limiter *writeLimiter
}

// New panics when store is nil.
func New(store autosave.Store, cfg Config, opts ...Option) *API {
	if store == nil {
		panic(ErrMissingStore)
	}
	a := &API{
		cfg:    cfg,
		store:  store,
		masker: mask.New(),
		log:    logger.Discard(),
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(logger.Component("formapi"))
	a.limiter = newWriteLimiter(a.clock, cfg.DraftRate, cfg.DraftBurst, cfg.LimiterIdleTTL)
	return a
}

// Routes returns the API router.
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(a.accessLog)
	r.Use(middleware.Recoverer)

	r.Route("/masks", func(r chi.Router) {
		r.Get("/", a.listMasks)
		r.Get("/{kind}", a.applyMask)
	})
	r.Route("/drafts/{formID}", func(r chi.Router) {
		r.Get("/", a.getDraft)
		r.Put("/", a.putDraft)
		r.Delete("/", a.deleteDraft)
	})
	r.Get("/health/live", a.live)
	r.Get("/health/ready", a.ready)
	return r
}

type maskResponse struct {
	Kind  mask.Kind `json:"kind"`
	Value string    `json:"value"`
}

func (a *API) listMasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]mask.Kind{"kinds": mask.Kinds()})
}

func (a *API) applyMask(w http.ResponseWriter, r *http.Request) {
	kind, err := mask.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	q := r.URL.Query()
	value := a.masker.Apply(kind, q.Get("previous"), q.Get("value"))
	writeJSON(w, http.StatusOK, maskResponse{Kind: kind, Value: value})
}

type draftField struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

type draftRequest struct {
	Fields []draftField `json:"fields"`
}

func (a *API) getDraft(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, "formID")
	d, err := a.store.Load(r.Context(), formID)
	if err != nil {
		a.storeError(w, r, formID, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (a *API) putDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	formID := chi.URLParam(r, "formID")

	if ok, wait := a.limiter.allow(formID); !ok {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(wait)))
		a.log.WarnContext(ctx, "draft write limited", logger.FormID(formID))
		writeError(w, http.StatusTooManyRequests, ErrRateLimited)
		return
	}

	if a.cfg.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, a.cfg.MaxBodyBytes)
	}
	var req draftRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidBody, err))
		return
	}

	fields := make([]autosave.Field, len(req.Fields))
	for i, f := range req.Fields {
		fields[i] = autosave.Field{Name: f.Name, Type: f.Type, Value: f.Value}
	}
	if err := a.store.Save(ctx, autosave.Snapshot(formID, fields)); err != nil {
		a.storeError(w, r, formID, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) deleteDraft(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, "formID")
	if err := a.store.Delete(r.Context(), formID); err != nil {
		a.storeError(w, r, formID, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) storeError(w http.ResponseWriter, r *http.Request, formID string, err error) {
	switch {
	case errors.Is(err, autosave.ErrDraftNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, autosave.ErrEmptyFormID):
		writeError(w, http.StatusBadRequest, err)
	default:
		a.log.ErrorContext(r.Context(), "draft store failed", logger.FormID(formID), logger.Error(err))
		writeError(w, http.StatusServiceUnavailable, autosave.ErrStorage)
	}
}

func (a *API) live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	for _, check := range a.checks {
		if err := check(r.Context()); err != nil {
			a.log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_ready"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (a *API) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := a.clock.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		a.log.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.RequestID(RequestID(r.Context())),
			logger.Duration(a.clock.Since(start)),
		)
	})
}

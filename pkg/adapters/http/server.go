// Package http exposes the engine over a JSON API: algorithm listing,
// per-session runs with manual stepping, and an SSE stream that plays a
// run to completion at the slow or fast cadence.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sortvis/pkg/algo"
	"sortvis/pkg/driver"
	"sortvis/pkg/ports"
	"sortvis/pkg/step"
)

// Engine is the slice of the sortvis engine the server needs.
type Engine interface {
	Algorithms() []algo.Descriptor
	SelectAlgorithm(key string) error
	Reset()
	Advance() (step.State, bool)
	Snapshot() driver.Snapshot
	Close()
}

// Factory creates the engine backing one run. An empty algorithm means
// the configured default; length <= 0 means the configured default.
type Factory func(algorithm string, length int) (Engine, error)

// Server manages run sessions over HTTP.
type Server struct {
	factory Factory
	store   ports.RunStore
	logger  *slog.Logger

	slow time.Duration
	fast time.Duration

	mu   sync.RWMutex
	runs map[string]*run
}

type run struct {
	id       string
	engine   Engine
	mu       sync.Mutex
	recorded bool
}

// Option configures the Server.
type Option func(*Server)

// WithStore enables run recording on completion.
func WithStore(store ports.RunStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithIntervals overrides the SSE stream cadences.
func WithIntervals(slow, fast time.Duration) Option {
	return func(s *Server) {
		s.slow, s.fast = slow, fast
	}
}

// NewServer creates the session server.
func NewServer(factory Factory, opts ...Option) *Server {
	d := driver.DefaultConfig()
	s := &Server{
		factory: factory,
		logger:  slog.Default(),
		slow:    d.SlowInterval,
		fast:    d.FastInterval,
		runs:    make(map[string]*run),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the HTTP routes. When reg is non-nil, Prometheus
// metrics are served on /metrics.
func (s *Server) Handler(reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)
	r.Get("/algorithms", s.getAlgorithms)

	r.Post("/runs", s.createRun)
	r.Get("/runs/{id}", s.getRun)
	r.Post("/runs/{id}/step", s.stepRun)
	r.Post("/runs/{id}/reset", s.resetRun)
	r.Post("/runs/{id}/algorithm", s.selectAlgorithm)
	r.Delete("/runs/{id}", s.deleteRun)
	r.Get("/runs/{id}/events", s.streamRun)

	r.Get("/records", s.listRecords)
	r.Get("/records/{id}", s.getRecord)

	if reg != nil {
		r.Method(http.MethodGet, "/metrics",
			promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

type algorithmInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) getAlgorithms(w http.ResponseWriter, r *http.Request) {
	descs := algo.Registry()
	out := make([]algorithmInfo, len(descs))
	for i, d := range descs {
		out[i] = algorithmInfo{Key: d.Key, Name: d.Name, Description: d.Description}
	}
	writeJSON(w, out)
}

type createRunRequest struct {
	Algorithm string `json:"algorithm,omitempty"`
	Length    int    `json:"length,omitempty"`
}

type runResponse struct {
	ID       string          `json:"id"`
	Snapshot driver.Snapshot `json:"snapshot"`
}

func (s *Server) createRun(w http.ResponseWriter, r *http.Request) {
	var body createRunRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			s.logger.Warn("createRun: invalid request body", "error", err)
			return
		}
	}

	engine, err := s.factory(body.Algorithm, body.Length)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, algo.ErrUnknownAlgorithm) || errors.Is(err, driver.ErrInvalidArrayLength) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	rn := &run{id: uuid.NewString(), engine: engine}
	s.mu.Lock()
	s.runs[rn.id] = rn
	s.mu.Unlock()

	s.logger.Info("run created", "run_id", rn.id, "algorithm", engine.Snapshot().Algorithm)
	writeJSON(w, runResponse{ID: rn.id, Snapshot: engine.Snapshot()})
}

func (s *Server) lookupRun(w http.ResponseWriter, r *http.Request) *run {
	id := chi.URLParam(r, "id")
	s.mu.RLock()
	rn, ok := s.runs[id]
	s.mu.RUnlock()
	if !ok {
		http.Error(w, "run not found", http.StatusNotFound)
		return nil
	}
	return rn
}

func (s *Server) getRun(w http.ResponseWriter, r *http.Request) {
	rn := s.lookupRun(w, r)
	if rn == nil {
		return
	}
	writeJSON(w, runResponse{ID: rn.id, Snapshot: rn.engine.Snapshot()})
}

type stepResponse struct {
	Step step.State `json:"step"`
	Done bool       `json:"done"`
}

func (s *Server) stepRun(w http.ResponseWriter, r *http.Request) {
	rn := s.lookupRun(w, r)
	if rn == nil {
		return
	}
	st, done := rn.engine.Advance()
	resp := stepResponse{Step: st.Clone(), Done: done}
	if done {
		s.record(r, rn)
	}
	writeJSON(w, resp)
}

func (s *Server) resetRun(w http.ResponseWriter, r *http.Request) {
	rn := s.lookupRun(w, r)
	if rn == nil {
		return
	}
	rn.engine.Reset()
	rn.mu.Lock()
	rn.recorded = false
	rn.mu.Unlock()
	writeJSON(w, runResponse{ID: rn.id, Snapshot: rn.engine.Snapshot()})
}

type selectRequest struct {
	Algorithm string `json:"algorithm"`
}

func (s *Server) selectAlgorithm(w http.ResponseWriter, r *http.Request) {
	rn := s.lookupRun(w, r)
	if rn == nil {
		return
	}
	var body selectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := rn.engine.SelectAlgorithm(body.Algorithm); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rn.mu.Lock()
	rn.recorded = false
	rn.mu.Unlock()
	writeJSON(w, runResponse{ID: rn.id, Snapshot: rn.engine.Snapshot()})
}

func (s *Server) deleteRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	rn, ok := s.runs[id]
	delete(s.runs, id)
	s.mu.Unlock()
	if !ok {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}
	rn.engine.Close()
	w.WriteHeader(http.StatusNoContent)
}

// streamRun plays the run to completion over SSE, one event per step at
// the requested cadence. The client disconnecting stops the stream; the
// run itself stays available for manual stepping.
func (s *Server) streamRun(w http.ResponseWriter, r *http.Request) {
	rn := s.lookupRun(w, r)
	if rn == nil {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	interval := s.slow
	if r.URL.Query().Get("mode") == string(driver.PlaybackFast) {
		interval = s.fast
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE client disconnected", "run_id", rn.id)
			return
		case <-ticker.C:
			st, done := rn.engine.Advance()
			payload, err := json.Marshal(stepResponse{Step: st.Clone(), Done: done})
			if err != nil {
				s.logger.Error("SSE encode failed", "error", err)
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
			if done {
				s.record(r, rn)
				return
			}
		}
	}
}

func (s *Server) listRecords(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, []string{})
		return
	}
	ids, err := s.store.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		s.logger.Error("list records failed", "error", err)
		return
	}
	writeJSON(w, ids)
}

func (s *Server) getRecord(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "no run store configured", http.StatusNotFound)
		return
	}
	rec, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ports.ErrRunNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, rec)
}

// record saves a completed run exactly once per producer.
func (s *Server) record(r *http.Request, rn *run) {
	if s.store == nil {
		return
	}
	rn.mu.Lock()
	if rn.recorded {
		rn.mu.Unlock()
		return
	}
	rn.recorded = true
	rn.mu.Unlock()

	snap := rn.engine.Snapshot()
	rec := ports.RunRecord{
		ID:          rn.id,
		Algorithm:   snap.Algorithm,
		Size:        len(snap.Step.Result),
		Steps:       snap.Steps,
		Sorted:      snap.Step.Clone().Result,
		CompletedAt: time.Now().UTC(),
	}
	if err := s.store.Save(r.Context(), rec); err != nil {
		s.logger.Error("run record save failed", "run_id", rn.id, "error", err)
		return
	}
	s.logger.Debug("run recorded", "run_id", rn.id, "steps", rec.Steps)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// Package server exposes the planner over HTTP/JSON.
//
//	POST /api/solve       planner.Request        -> planner.Response
//	POST /api/compare     planner.CompareRequest -> planner.CompareResponse
//	POST /api/validate    scenario document      -> {valid, errors}
//	GET  /api/algorithms  -> {algorithms: [...]}
//	GET  /healthz         -> ok
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/katalvlaran/tourlab/geometry"
	"github.com/katalvlaran/tourlab/planner"
	"github.com/katalvlaran/tourlab/scenario"
	"github.com/katalvlaran/tourlab/tsp"
)

// maxBody caps request bodies.
const maxBody = 8 << 20

// Server is the HTTP front of the planner.
type Server struct {
	port    int
	logger  *slog.Logger
	timeout time.Duration
	workers int
}

// New creates a server listening on port. timeout bounds each solve; zero
// means no bound beyond the client's own connection.
func New(port int, logger *slog.Logger, timeout time.Duration, workers int) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{port: port, logger: logger, timeout: timeout, workers: workers}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/solve", s.handleSolve)
	mux.HandleFunc("POST /api/compare", s.handleCompare)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("GET /api/algorithms", s.handleAlgorithms)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "ok")
	})

	return mux
}

// Start serves until ctx ends, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("tourlab server starting", "addr", "http://localhost"+srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("tourlab server stopping")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) opts(r *http.Request) []planner.Option {
	return []planner.Option{
		planner.WithLogger(s.logger.With("remote", r.RemoteAddr)),
		planner.WithWorkers(s.workers),
	}
}

func (s *Server) solveContext(r *http.Request) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(r.Context(), s.timeout)
	}
	return context.WithCancel(r.Context())
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req planner.Request
	if !s.decode(w, r, &req) {
		return
	}
	ctx, cancel := s.solveContext(r)
	defer cancel()

	resp, err := planner.Solve(ctx, req, s.opts(r)...)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req planner.CompareRequest
	if !s.decode(w, r, &req) {
		return
	}
	ctx, cancel := s.solveContext(r)
	defer cancel()

	resp, err := planner.CompareAll(ctx, req, s.opts(r)...)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}
	out := validation{Errors: []string{}}
	sc, err := scenario.Unmarshal(body, scenario.FormatJSON)
	if err == nil {
		err = sc.Validate()
	}
	if err != nil {
		out.Errors = splitJoined(err)
	}
	out.Valid = len(out.Errors) == 0
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"algorithms": tsp.Algorithms()})
}

// decode reads a JSON body into v, answering 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(v); err != nil {
		s.logger.Debug("bad request body", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return false
	}
	return true
}

// fail maps planner errors onto status codes.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "status", status)
	}
	writeError(w, status, err)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, tsp.ErrCancelled), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	case errors.Is(err, tsp.ErrNoNodes),
		errors.Is(err, tsp.ErrInvalidOptions),
		errors.Is(err, tsp.ErrUnsupportedAlgorithm),
		errors.Is(err, tsp.ErrBadDistance),
		errors.Is(err, geometry.ErrDegeneratePolygon),
		errors.Is(err, geometry.ErrNonFinite):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// splitJoined flattens an errors.Join tree into messages.
func splitJoined(err error) []string {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range j.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

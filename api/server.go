// Package api - Persistence service and engine HTTP surface
// The API is ONLY responsible for: input decoding, auth, engine orchestration
// and output serialization. Compatibility, generation and pricing live in core.
package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"pcbuild/api/v1/types"
	"pcbuild/core/catalog"
	"pcbuild/core/generator"
	"pcbuild/core/pricing"
	core "pcbuild/core/types"
	"pcbuild/db"
	"pcbuild/internal/errors"
)

// AdminHeader carries the shared admin secret on mutating requests
const AdminHeader = "X-Admin-Password"

// Server is the API server
type Server struct {
	mux        *http.ServeMux
	handler    http.Handler
	store      db.Store
	catalog    *catalog.Store
	heuristics generator.Heuristics
	formatter  *pricing.Formatter
	password   string
	version    string
	storeName  string
	logger     *zap.Logger
}

// Option configures a Server
type Option func(*Server)

// WithBase sets the compiled-in dataset the inventory is layered over
func WithBase(base core.Catalog) Option {
	return func(s *Server) {
		s.catalog = catalog.NewStore(base, db.Overrides{Store: s.store})
	}
}

// WithHeuristics replaces the generator defaults
func WithHeuristics(h generator.Heuristics) Option {
	return func(s *Server) { s.heuristics = h }
}

// WithFormatter sets how bill totals are rendered
func WithFormatter(f *pricing.Formatter) Option {
	return func(s *Server) {
		if f != nil {
			s.formatter = f
		}
	}
}

// WithLogger sets the request logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStoreName labels the backend in /health
func WithStoreName(name string) Option {
	return func(s *Server) { s.storeName = name }
}

// NewServer creates a server over store. An empty password rejects every
// mutation.
func NewServer(version string, store db.Store, password string, opts ...Option) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		store:      store,
		heuristics: generator.DefaultHeuristics(),
		formatter:  pricing.DefaultFormatter(),
		password:   password,
		version:    version,
		logger:     zap.NewNop(),
	}
	s.catalog = catalog.NewStore(catalog.Baseline(), db.Overrides{Store: store})
	for _, opt := range opts {
		opt(s)
	}
	s.registerRoutes()
	s.handler = s.withRequestID(s.withLogging(s.withRecovery(s.mux)))
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Persistence contract
	s.mux.HandleFunc("GET /inventory", s.handleListInventory)
	s.mux.HandleFunc("POST /inventory", s.requireAdmin(s.handleUpsertInventory))
	s.mux.HandleFunc("DELETE /inventory/{category}/{id}", s.requireAdmin(s.handleDeleteInventory))
	s.mux.HandleFunc("GET /configs", s.handleListConfigs)
	s.mux.HandleFunc("POST /configs", s.requireAdmin(s.handleUpsertConfig))
	s.mux.HandleFunc("DELETE /configs/{cpuBrand}/{game}/{budgetKey}", s.requireAdmin(s.handleDeleteConfig))

	// Engine endpoints
	s.mux.HandleFunc("GET /catalog", s.handleCatalog)
	s.mux.HandleFunc("GET /options/{category}", s.handleOptions)
	s.mux.HandleFunc("POST /generate", s.handleGenerate)
	s.mux.HandleFunc("POST /total", s.handleTotal)

	s.mux.HandleFunc("GET /health", s.handleHealth)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, types.HealthResponse{
		Status:  "healthy",
		Version: s.version,
		Store:   s.storeName,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// requireAdmin rejects requests without the shared secret, taken from the
// header or the password query parameter
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		given := r.Header.Get(AdminHeader)
		if given == "" {
			given = r.URL.Query().Get("password")
		}
		if s.password == "" || subtle.ConstantTimeCompare([]byte(given), []byte(s.password)) != 1 {
			s.writeError(w, r, errors.Unauthorized("admin password required"))
			return
		}
		next(w, r)
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, r, errors.Wrap(errors.TypeInput, "invalid JSON body", err))
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	message := err.Error()
	if e, ok := errors.As(err); ok {
		message = e.Message
		if e.Cause != nil && e.Type == errors.TypeInput {
			message += ": " + e.Cause.Error()
		}
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("request_id", requestIDFrom(r.Context())), zap.Error(err))
	}
	s.writeJSON(w, types.ErrorResponse{Error: types.ErrorDTO{
		Code:      code,
		Message:   message,
		RequestID: requestIDFrom(r.Context()),
	}}, status)
}

func statusFor(err error) (int, string) {
	if stderrors.Is(err, db.ErrNotFound) {
		return http.StatusNotFound, string(errors.TypeNotFound)
	}
	e, ok := errors.As(err)
	if !ok {
		return http.StatusInternalServerError, string(errors.TypeInternal)
	}
	switch e.Type {
	case errors.TypeInput:
		return http.StatusBadRequest, string(e.Type)
	case errors.TypeUnauthorized:
		return http.StatusUnauthorized, string(e.Type)
	case errors.TypeNotFound:
		return http.StatusNotFound, string(e.Type)
	case errors.TypeGeneration:
		return http.StatusUnprocessableEntity, string(e.Type)
	default:
		return http.StatusInternalServerError, string(e.Type)
	}
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight requests
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

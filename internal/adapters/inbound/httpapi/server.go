// Package httpapi exposes the analyzer over a JSON REST API. Handlers
// are stateless; every request is analyzed from scratch.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/codelens/codelens/internal/adapters/outbound/report"
	"github.com/codelens/codelens/internal/application"
	"github.com/codelens/codelens/internal/domain"
)

// maxBodyBytes bounds request bodies; snippets past this are rejected.
const maxBodyBytes = 1 << 20

type Server struct {
	analyze *application.AnalyzeService
	fix     *application.FixService
	cfg     domain.ServerConfig
	status  []ProviderStatus
	log     *zap.Logger
	httpSrv *http.Server
}

// ProviderStatus reports whether an AI provider has credentials, without
// leaking them.
type ProviderStatus struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
	Model      string `json:"model"`
}

func NewServer(analyze *application.AnalyzeService, fix *application.FixService, cfg domain.ServerConfig, status []ProviderStatus, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		analyze: analyze,
		fix:     fix,
		cfg:     cfg,
		status:  status,
		log:     log,
	}
}

// Start blocks serving HTTP until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	s.httpSrv = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	s.log.Info("http server listening", zap.String("addr", s.cfg.Addr))
	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the routed handler without starting a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/fix", s.handleFix)
	mux.HandleFunc("/api/report", s.handleReport)
	mux.HandleFunc("/api/report/html", s.handleReportHTML)
	return s.withCORS(s.withLogging(mux))
}

type snippetRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

type analyzeResponse struct {
	domain.AnalysisResult
	AnalyzedAt string `json:"analyzedAt"`
	Code       string `json:"code"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]any{"providers": s.status}, http.StatusOK)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decodeSnippet(w, r)
	if !ok {
		return
	}

	result := s.analyze.Analyze(doc)
	respondJSON(w, analyzeResponse{
		AnalysisResult: result,
		AnalyzedAt:     time.Now().UTC().Format(time.RFC3339),
		Code:           doc.Code,
	}, http.StatusOK)
}

func (s *Server) handleFix(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decodeSnippet(w, r)
	if !ok {
		return
	}

	result := s.fix.Fix(r.Context(), doc)
	respondJSON(w, result, http.StatusOK)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decodeSnippet(w, r)
	if !ok {
		return
	}

	result := s.analyze.Analyze(doc)
	rpt := report.Text(result, doc.Code, time.Now())
	respondJSON(w, rpt, http.StatusOK)
}

func (s *Server) handleReportHTML(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decodeSnippet(w, r)
	if !ok {
		return
	}

	result := s.analyze.Analyze(doc)
	rpt, err := report.HTML(result, doc.Code, time.Now())
	if err != nil {
		respondJSON(w, map[string]string{"error": err.Error()}, http.StatusInternalServerError)
		return
	}
	respondJSON(w, map[string]string{"filename": rpt.Filename, "html": rpt.Content}, http.StatusOK)
}

// decodeSnippet validates method and body for the POST endpoints that
// take a code snippet. A false return means a response was written.
func (s *Server) decodeSnippet(w http.ResponseWriter, r *http.Request) (domain.Document, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return domain.Document{}, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req snippetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, map[string]string{"error": err.Error()}, http.StatusBadRequest)
		return domain.Document{}, false
	}
	if req.Code == "" {
		respondJSON(w, map[string]string{"error": "code is required"}, http.StatusBadRequest)
		return domain.Document{}, false
	}

	return domain.NewDocument(req.Code, req.Language), true
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(s.cfg.AllowedOrigins))
	for _, o := range s.cfg.AllowedOrigins {
		allowed[o] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func respondJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

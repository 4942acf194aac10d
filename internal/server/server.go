// Package server provides the HTTP REST API for the resume screening
// service. The API layer is thin glue over internal/screening; all scoring
// logic lives in the pipeline packages.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/surendra-bolla/NeuralScan/internal/screening"
)

// maxUploadBytes caps multipart resume uploads.
const maxUploadBytes = 20 << 20 // 20 MiB

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	screener   *screening.Screener
}

// Config holds server configuration.
type Config struct {
	Port     int
	Screener *screening.Screener
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	if cfg.Screener == nil {
		return nil, fmt.Errorf("screener is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	s := &Server{screener: cfg.Screener}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/v1/screen", s.handleScreen)
	mux.HandleFunc("POST /api/v1/screen-resume", s.handleScreenUpload)
	mux.HandleFunc("POST /api/v1/batch-screen", s.handleBatchScreen)
	mux.HandleFunc("POST /api/v1/extract-resume-data", s.handleExtractResumeData)
	mux.HandleFunc("POST /api/v1/extract-job-requirements", s.handleExtractJobRequirements)
	mux.HandleFunc("POST /api/v1/compare-resumes", s.handleCompareResumes)
	mux.HandleFunc("GET /api/v1/skill-categories", s.handleSkillCategories)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // embedding calls dominate latency
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers for the dashboard front-end.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging with a per-request ID.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", rid)

		log.Printf("[%s] %s %s rid=%s", r.Method, r.URL.Path, r.RemoteAddr, rid)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v rid=%s", r.Method, r.URL.Path, time.Since(start), rid)
	})
}

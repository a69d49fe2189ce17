package server

import (
	"context"
	"embed"
	"log"
	"net/http"
	"time"

	"github.com/katiapek/CompoundingSimulator/internal/config"
	"github.com/katiapek/CompoundingSimulator/internal/monitoring"
)

//go:embed static/index.html
var staticFS embed.FS

// Server hosts the simulator web UI and JSON API. It holds no per-session
// state: every request runs the pure engines against its own inputs, so
// concurrent requests are safe without locking.
type Server struct {
	cfg    *config.Config
	health *monitoring.HealthChecker
	mux    *http.ServeMux
	http   *http.Server
}

// New builds the server and its routes
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:    cfg,
		health: monitoring.NewHealthChecker(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /api/simulate", s.handleSimulate)
	mux.Handle("GET /healthz", s.health)
	mux.Handle("GET /metrics", monitoring.Handler())

	s.mux = mux
	s.http = &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the route table, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves until the context is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("🌐 Simulator UI listening on %s", s.cfg.Server.ListenAddr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

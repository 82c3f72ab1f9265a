package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/kurochkinivan/file_storage/internal/config"
)

type Server struct {
	httpServer *http.Server
}

type Dependencies struct {
	Uploader      Uploader
	Progress      ProgressProvider
	Files         FilesService
	Pinger        Pinger
	MaxUploadSize int64
}

func NewServer(log *slog.Logger, cfg config.HTTP, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, cfg, deps),
		},
	}
}

func NewRouter(log *slog.Logger, cfg config.HTTP, deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorMessage(w, http.StatusNotFound, "Not Found", "")
	})

	health := NewHealthHandler(log, deps.Pinger)
	r.Get("/health", health.Health)

	fh := NewFilesHandler(log, deps.Uploader, deps.Files, deps.MaxUploadSize)
	ph := NewProgressHandler(deps.Progress)

	r.Route("/api/files", func(r chi.Router) {
		if cfg.RateLimit > 0 {
			r.Use(httprate.Limit(
				cfg.RateLimit,
				cfg.RateLimitWindow,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
					writeErrorMessage(w, http.StatusTooManyRequests, "Too many requests from this IP, please try again later", "")
				}),
			))
		}

		r.Post("/begin", fh.BeginUpload)
		r.Post("/", fh.UploadFile)
		r.Get("/", fh.ListFiles)
		r.Get("/export", fh.ExportFiles)
		r.Get("/progress/{id}", ph.GetUploadProgress)
		r.Get("/{id}", fh.DownloadFile)
		r.Get("/{id}/details", fh.GetFileDetails)
		r.Delete("/{id}", fh.DeleteFile)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"psaxe.dev/internal/cache"
	"psaxe.dev/internal/config"
	"psaxe.dev/internal/middleware"
	"psaxe.dev/internal/render"
	"psaxe.dev/internal/services"
)

// Deps are the process-wide collaborators the router needs
type Deps struct {
	Logger   *slog.Logger
	Cache    cache.Cache
	Registry *prometheus.Registry
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, deps Deps) (http.Handler, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if deps.Cache == nil {
		deps.Cache = cache.NewMemoryCache()
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}

	r := chi.NewRouter()

	// Middleware
	metrics := middleware.NewMetrics(deps.Registry)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(metrics.Middleware)
	r.Use(middleware.Recovery(logger))

	// Initialize services
	contentService := services.NewDefaultContentService(cfg.ProfileImage)
	renderer, err := render.New(cfg.ProfileImageURL())
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	// Initialize handlers
	pageHandler := NewPageHandler(PageOptions{
		Content:         contentService,
		Renderer:        renderer,
		Cache:           deps.Cache,
		CacheTTL:        cfg.CacheTTL,
		RevealThreshold: cfg.RevealThreshold,
		ImageAvailable:  cfg.ProfileImageAvailable,
		Logger:          logger,
		Registry:        deps.Registry,
	})
	contentHandler := NewContentHandler(contentService)
	projectHandler := NewProjectHandler(contentService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/content", contentHandler.GetContent)
		r.Get("/skills", contentHandler.ListSkills)
		r.Get("/links", contentHandler.GetLinks)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// The page itself
	r.Get("/", pageHandler.Index)

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode json response", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

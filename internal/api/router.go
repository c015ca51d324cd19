package api

import (
	"net/http"
	"planet-travel-service/internal/api/handlers"
	"planet-travel-service/internal/platform/metrics"
	"planet-travel-service/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.PlanetRepository, logger *zap.Logger, allowedOrigins []string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.Register(reg)
	httpMetrics := metrics.NewMiddleware("planet-travel-service")
	reg.MustRegister(httpMetrics.Collectors()...)

	planetHandler := &handlers.PlanetHandler{Repo: repo, Logger: logger}
	travelHandler := &handlers.TravelHandler{Repo: repo, Logger: logger}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		loggingMiddleware(logger.Named("http")),
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}),
		httpMetrics.Handler,
	)

	r.Get("/health", handlers.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api/planets", func(r chi.Router) {
		r.Get("/", planetHandler.List)
		r.Get("/travel", travelHandler.Travel)
		r.Get("/{name}", planetHandler.Get)
		r.Get("/{name}/image", planetHandler.Image)
	})

	return r
}

package routes

import (
	"net/http"
	"time"

	"flightdesk/scheduler/internal/api"
	"flightdesk/scheduler/internal/auth"
	"flightdesk/scheduler/internal/common"
	"flightdesk/scheduler/internal/logging"
	"flightdesk/scheduler/internal/metrics"
	"flightdesk/scheduler/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options carries everything the router needs; built in cmd/server and in tests
type Options struct {
	Deps           *api.Dependencies
	Tokens         *auth.TokenManager
	Limiter        common.RateLimiter
	Metrics        *metrics.MetricsRegistry
	MetricsHandler http.Handler
	CORSOrigins    []string
	UpSince        time.Time
}

func RegisterRoutes(opts Options) http.Handler {
	r := chi.NewRouter()
	useGlobalMiddleware(r, opts)

	r.Get("/", api.RootHandler())
	r.Get("/healthCheck", api.HealthCheckHandler(opts.Deps.Repo.Reports, opts.UpSince))
	if opts.MetricsHandler != nil {
		r.Handle("/metrics", opts.MetricsHandler)
	}

	RegisterAPIRoutes(r, opts.Deps, opts.Tokens)

	logging.Info("Router initialized with metrics and logging middleware")
	return r
}

// useGlobalMiddleware installs the chain every route shares. Recoverer sits
// inside the metrics middleware so a recovered panic is counted and logged as a 500.
func useGlobalMiddleware(r chi.Router, opts Options) {
	// global middleware
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(opts.Metrics))
	r.Use(chimw.Recoverer)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"https://*", "http://localhost:*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	if opts.Limiter != nil {
		r.Use(middleware.RateLimitMiddleware(opts.Limiter, opts.Metrics))
	}
}

package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/blockseblock/backend/internal/metrics"
	"github.com/blockseblock/backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// RouteRegistrar is implemented by every handler
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// RouterOptions configures the shared middleware chain
type RouterOptions struct {
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	AllowedOrigins []string
	// RateLimitPerMinute is the per-IP request budget; 0 disables rate limiting
	RateLimitPerMinute int
	// SwaggerURL is where the UI loads the API document from; empty disables /swagger
	SwaggerURL string
}

// NewRouter builds the chi router with the middleware chain and the given handlers
func NewRouter(opts RouterOptions, handlers ...RouteRegistrar) chi.Router {
	base := &BaseHandler{Logger: opts.Logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.CORS(opts.AllowedOrigins))
	if opts.RateLimitPerMinute > 0 {
		r.Use(skipPrefix(uploadsPrefix, httprate.Limit(opts.RateLimitPerMinute, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				base.RespondError(w, http.StatusTooManyRequests, "Too many requests")
			}),
		)))
	}
	r.Use(opts.Metrics.Middleware)
	r.Use(middleware.Principal)

	r.NotFound(base.NotFound)
	r.MethodNotAllowed(base.MethodNotAllowed)

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	if opts.SwaggerURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(opts.SwaggerURL)))
	}

	for _, h := range handlers {
		h.RegisterRoutes(r)
	}
	return r
}

// uploadsPrefix marks file downloads, which are not rate limited
const uploadsPrefix = "/uploads/"

// skipPrefix applies mw to every request except those under prefix
func skipPrefix(prefix string, mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		wrapped := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
			wrapped.ServeHTTP(w, r)
		})
	}
}

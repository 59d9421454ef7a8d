package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-dispatch/internal/http/handlers"
	mw "service-dispatch/internal/http/middleware"
	"service-dispatch/internal/http/middleware/ratelimit"
	"service-dispatch/internal/logx"
)

// Schedule runs over large batches can take a while; the timeout is
// sized for the best-fit strategy's search, not for a single lookup.
const requestTimeout = 60 * time.Second

// New constructs a chi-based http.Handler with base middleware and routes.
func New(logger logx.Logger, h *handlers.Handlers, schedule *handlers.ScheduleHandler, limiter *ratelimit.Middleware) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(mw.Observability(logger))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Handler())
		}
		r.Post("/v1/schedules", schedule.Create)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}

package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/forum-api/backend/internal/setup"
	mw "github.com/itchan-dev/forum-api/shared/middleware"
	"github.com/itchan-dev/forum-api/shared/middleware/metrics"
	rl "github.com/itchan-dev/forum-api/shared/middleware/ratelimiter"
)

// New creates the chi router with all the routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", mw.CSRFHeaderName},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeadersWithCSP(deps.Config.Public.HTTPS, mw.APIContentSecurityPolicy))
	r.Use(metrics.Middleware)

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1/threads", func(r chi.Router) {
		r.Use(mw.IssueCSRFToken(deps.Config.Public.HTTPS))
		r.Get("/{threadId}", h.GetThread)

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireCSRFForCookieAuth())
			r.Use(deps.Auth.NeedAuth())

			r.Post("/", h.AddThread)
			r.With(commentRateLimit(deps)).Post("/{threadId}/comments", h.AddComment)
			r.Delete("/{threadId}/comments/{commentId}", h.DeleteComment)
		})
	})

	return r
}

// commentRateLimit limits comment creation per user. A zero rate disables it.
func commentRateLimit(deps *setup.Dependencies) func(http.Handler) http.Handler {
	limit := deps.Config.Public.CommentRateLimit
	if limit.Rate <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	burst := limit.Burst
	if burst < 1 {
		burst = 1
	}
	return mw.RateLimit(rl.New(limit.Rate, burst, time.Hour), mw.GetUserIDFromContext)
}

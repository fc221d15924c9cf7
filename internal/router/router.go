package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lacentralbaja/archivo/internal/api"
	mw "github.com/lacentralbaja/archivo/internal/middleware"
	"github.com/lacentralbaja/archivo/internal/middleware/metrics"
	rl "github.com/lacentralbaja/archivo/internal/middleware/ratelimiter"
	"github.com/lacentralbaja/archivo/internal/setup"
)

// New creates the router with all routes.
// IMPORTANT! a ratelimiter set with .Use limits requests for all endpoints in
// that group combined.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", mw.AdminKeyHeader},
	}))

	h := deps.Handler

	perMinute := deps.Config.Public.SubmitPerMinute
	if perMinute <= 0 {
		perMinute = 6
	}
	burst := deps.Config.Public.SubmitBurst
	if burst <= 0 {
		burst = 3
	}
	submitLimiter := rl.PerMinute(perMinute, burst)

	r.Route("/api", func(r chi.Router) {
		r.Get("/seed", h.GetSeed)
		r.Get("/board", h.GetBoard)
		r.Get("/artists", h.GetArtists)
		r.Post("/admin/login", h.AdminLogin)

		// Anonymous write endpoints, throttled per client IP. Directory
		// entries go live without moderation; the rate limit is the only
		// brake on them.
		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimit(submitLimiter, mw.GetIP))
			r.Post("/board/submit", h.SubmitBoard)
			r.Post("/artists", h.CreateArtist)
		})

		// Everything privileged sits behind the shared admin key.
		r.Group(func(r chi.Router) {
			r.Use(deps.Gate.Require())
			r.Post("/board", h.CreateBoard)
			r.Delete("/board/{id}", h.DeleteBoard)
			r.Get("/admin/board", h.AdminListBoard)
			r.Post("/admin/board/{id}/approve", h.ApproveBoard)
			r.Post("/admin/board/{id}/reject", h.RejectBoard)
			r.Delete("/artists/{id}", h.DeleteArtist)
		})
	})

	// Stored uploads are public by filename.
	fileServer := http.FileServer(http.Dir(deps.Media.Root()))
	r.Handle(api.UploadsMount+"*", http.StripPrefix(api.UploadsMount, fileServer))

	r.Handle("/metrics", promhttp.Handler())

	return r
}

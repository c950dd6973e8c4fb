package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// DefaultRateLimit is the per-IP request budget per minute.
const DefaultRateLimit = 60

// NewRouter builds and returns the Chi router with all routes configured.
// Rate limiting is applied globally per IP; a non-positive rateLimit falls
// back to DefaultRateLimit.
func NewRouter(handlers *Handlers, db, redisClient Pinger, rateLimit int, log *slog.Logger) *chi.Mux {
	if rateLimit <= 0 {
		rateLimit = DefaultRateLimit
	}

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(log))
	r.Use(httprate.LimitByIP(rateLimit, time.Minute))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", HealthHandlerFunc(db, redisClient, log))
		r.Get("/locations", handlers.ListLocations)
		r.Get("/carriers", handlers.ListCarriers)
		r.Get("/flights", handlers.SearchFlights)
		r.Get("/routes/map", handlers.RouteMap)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)

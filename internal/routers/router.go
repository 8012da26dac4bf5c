package routers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"codesync/internal/api"
	"codesync/internal/metrics"
	"codesync/internal/session"
	"codesync/internal/utils"
)

func New(log *utils.Logger, coord *session.Coordinator) http.Handler {
	h := api.NewHandlers(log, coord)
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(metrics.Middleware("codesync"))

	r.Handle("/metrics", metrics.Handler())
	r.Get("/api/v1/healthz", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Post("/api/v1/analyze", h.AnalyzeCode)
	})

	// No timeout here: collaboration sockets stay open for the whole
	// session.
	r.Get("/ws", h.CollabWS)

	return r
}

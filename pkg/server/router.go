// Package server exposes a service.Set as the JSON trip API the client speaks.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"tableflip.dev/trip/pkg/service"
)

// NewRouter creates a chi router with all API routes mounted.
//
// Middleware is applied in order: RequestID, RealIP, request logging, Recoverer.
func NewRouter(svc service.Set, log *slog.Logger) chi.Router {
	h := &handler{svc: svc, log: log}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(NewSlogLogger(log))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", h.health)

	r.Post("/trips", h.createTrip)
	r.Route("/trips/{tripID}", func(r chi.Router) {
		r.Get("/", h.getTrip)
		r.Put("/", h.updateTrip)

		r.Get("/activities", h.listActivities)
		r.Post("/activities", h.createActivity)

		r.Get("/links", h.listLinks)
		r.Post("/links", h.createLink)

		r.Get("/participants", h.listParticipants)
	})

	r.Get("/participants/{participantID}", h.getParticipant)
	r.Post("/participants/{participantID}/confirm", h.confirmParticipant)

	return r
}

// NewSlogLogger returns a middleware that logs each request through log with its
// method, path, status, duration and request id.
//
// Wire it after chimiddleware.RequestID so the request id is available.
func NewSlogLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
		})
	}
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.Route("/api/vault", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listEnvelopes)
		r.Post("/", h.createEnvelope)
		r.Put("/{id}", h.updateEnvelope)
		r.Delete("/{id}", h.deleteEnvelope)
	})

	return router
}

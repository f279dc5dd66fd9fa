package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/transactions", func(r chi.Router) {
		// create bootstraps the session, so no guard applies
		r.Group(func(r chi.Router) {
			r.Post("/", h.create)
		})

		// every other operation requires the session cookie
		r.Group(func(r chi.Router) {
			r.Use(h.sessionAuth)
			r.Get("/", h.list)
			r.Get("/summary", h.summary)
			r.Get("/{id}", h.getOne)
			r.Put("/{id}", h.update)
			r.Delete("/{id}", h.remove)
		})
	})

	return router
}

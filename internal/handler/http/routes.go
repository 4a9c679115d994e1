package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/users", h.listUsers)
		r.Post("/users/signup", h.signup)
		r.Post("/users/login", h.login)

		r.Get("/places/{pid}", h.getPlace)
		r.Get("/places/user/{uid}", h.getPlacesByUser)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/places", h.createPlace)
		r.Patch("/places/{pid}", h.updatePlace)
		r.Delete("/places/{pid}", h.deletePlace)
	})

	return router
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Get("/car", h.listCars)
		r.Get("/car/{carId}", h.getCar)
		r.Get("/auth/{userId}", h.getUser)
		r.Post("/auth/login", h.login)
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/logout", h.logout)

		// gated routes: the loginToken cookie is resolved before any body
		// parsing; the message is the per-route 401 body
		r.With(h.auth("Cannot add car")).Post("/car", h.addCar)
		r.With(h.auth("Cannot update car")).Put("/car", h.editCar)
		r.With(h.auth("Cannot delete car")).Delete("/car/{carId}", h.removeCar)
		r.With(h.auth("Cannot update user")).Put("/user", h.updateUser)
	})

	// single-page-app fallback for everything else
	router.NotFound(h.static)

	return router
}

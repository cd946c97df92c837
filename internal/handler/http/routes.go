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
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/reset/request", h.resetRequest)
		r.Post("/api/auth/reset/verify", h.resetVerify)
		r.Post("/api/auth/reset", h.resetPassword)

		r.Route("/api/surveys/sessions", func(r chi.Router) {
			r.Post("/", h.startSession)
			r.Get("/{id}", h.getSession)
			r.Post("/{id}/pharmacy", h.selectPharmacy)
			r.Post("/{id}/access-code", h.enterAccessCode)
			r.Post("/{id}/type", h.selectSurveyType)
			r.Post("/{id}/answers", h.recordAnswer)
			r.Post("/{id}/next", h.nextQuestion)
			r.Post("/{id}/previous", h.previousQuestion)
		})

		r.Route("/api/directory", func(r chi.Router) {
			r.Get("/departements", h.departements)
			r.Get("/departements/{id}/communes", h.communes)
			r.Get("/communes/{id}/arrondissements", h.arrondissements)
			r.Get("/arrondissements/{id}/villages", h.villages)
			r.Get("/pharmacies", h.pharmacies)
			r.Get("/pharmacies/{id}", h.pharmacy)
			r.Post("/pharmacies/search", h.searchPharmacies)
			r.Post("/check-email", h.checkEmail)
		})
	})

	// routes requiring a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)

		r.Get("/api/users/me", h.currentUser)
		r.Patch("/api/users/me", h.updateProfile)
		r.Post("/api/users/me/password", h.changePassword)

		r.Get("/api/users/me/favorites", h.favorites)
		r.Put("/api/users/me/favorites/{id}", h.addFavorite)
		r.Delete("/api/users/me/favorites/{id}", h.removeFavorite)
	})

	// admin-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.adminOnly)

		r.Get("/api/users", h.listUsers)
		r.Post("/api/users", h.createUser)
		r.Delete("/api/users/{id}", h.deleteUser)

		r.Get("/api/submissions", h.listSubmissions)
		r.Get("/api/submissions/{id}", h.getSubmission)

		r.Post("/api/directory/pharmacies", h.createPharmacy)
		r.Patch("/api/directory/pharmacies/{id}", h.updatePharmacy)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

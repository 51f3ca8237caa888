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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/create", h.createUser)
		r.Post("/api/user/token", h.createToken)
	})

	// routes protected by bearer token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.getProfile)
		r.Patch("/api/user/me", h.updateProfile)

		r.Route("/api/recipe", func(r chi.Router) {
			r.Get("/recipes", h.listRecipes)
			r.Post("/recipes", h.createRecipe)
			r.Get("/recipes/{id}", h.getRecipe)
			r.Put("/recipes/{id}", h.updateRecipe)
			r.Patch("/recipes/{id}", h.updateRecipe)
			r.Delete("/recipes/{id}", h.deleteRecipe)

			r.Get("/tags", h.listTags)
			r.Patch("/tags/{id}", h.renameTag)
			r.Delete("/tags/{id}", h.deleteTag)

			r.Get("/ingredients", h.listIngredients)
			r.Patch("/ingredients/{id}", h.renameIngredient)
			r.Delete("/ingredients/{id}", h.deleteIngredient)
		})
	})

	return router
}

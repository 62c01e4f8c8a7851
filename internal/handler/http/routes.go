package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/me", h.me)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Patch("/", h.updateUsers)
			r.Patch("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.listCategories)
			r.Post("/", h.createCategory)
		})

		r.Route("/inventories", func(r chi.Router) {
			r.Get("/", h.listInventories)
			r.Post("/", h.createInventory)

			// {id} is the owner UUID for GET and the inventory id otherwise.
			r.Get("/{id}", h.listUserInventories)
			r.Post("/{id}", h.addItem)
			r.Delete("/{id}", h.deleteInventory)

			r.Get("/{id}/items", h.listItems)
			r.Delete("/{id}/items", h.deleteItems)

			r.Get("/{id}/fields", h.getFields)
			r.Post("/{id}/fields", h.defineFields)
		})

		r.Route("/crm", func(r chi.Router) {
			r.Put("/credential", h.saveCRMCredential)
			r.Get("/health", h.crmHealth)
			r.Post("/contacts", h.createCRMContact)
		})
	})

	return router
}

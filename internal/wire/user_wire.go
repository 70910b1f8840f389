package wire

import (
	"site-admin/internal/adaptor"
	"site-admin/internal/data/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser registers the admin user page and user management API.
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(adminOnly(repo, log)...).Get("/admin/users", userHandler.View)

	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(adminOnly(repo, log)...)

		r.Get("/", userHandler.ListUsers)        // GET /api/admin/users?search=&page=1
		r.Put("/{id}", userHandler.UpdateUser)   // PUT /api/admin/users/{id}
		r.Patch("/{id}", userHandler.UpdateUser) // PATCH /api/admin/users/{id}
	})
}

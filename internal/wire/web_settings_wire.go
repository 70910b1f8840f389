package wire

import (
	"site-admin/internal/adaptor"
	"site-admin/internal/data/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWebSettings(
	r chi.Router,
	settingsHandler *adaptor.WebSettingsHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public: the frontend needs titles and contacts before login.
	r.Get("/api/settings", settingsHandler.GetSettings)

	r.With(adminOnly(repo, log)...).Put("/api/admin/settings", settingsHandler.UpdateSettings)
}

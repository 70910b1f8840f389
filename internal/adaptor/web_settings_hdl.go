package adaptor

import (
	"net/http"

	"site-admin/internal/dto/request"
	"site-admin/internal/usecase"
	"site-admin/pkg/utils"

	"go.uber.org/zap"
)

type WebSettingsHandler struct {
	service usecase.WebSettingsService
	log     *zap.Logger
}

func NewWebSettingsHandler(service usecase.WebSettingsService, log *zap.Logger) *WebSettingsHandler {
	return &WebSettingsHandler{
		service: service,
		log:     log.With(zap.String("handler", "web_settings")),
	}
}

// GetSettings handles GET /api/settings
func (h *WebSettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get settings")
		return
	}

	utils.ResponseSuccess(w, "Settings retrieved successfully", settings)
}

// UpdateSettings handles PUT /api/admin/settings
func (h *WebSettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateWebSettingsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Warn("Invalid settings body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update settings")
		return
	}

	utils.ResponseSuccess(w, "Settings updated successfully", settings)
}

package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"site-admin/internal/usecase"
	"site-admin/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	User        *UserHandler
	WebSettings *WebSettingsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:        NewUserHandler(service.User, log),
		WebSettings: NewWebSettingsHandler(service.WebSettings, log),
	}
}

const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON body into dst, rejecting unknown trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// handleServiceError maps usecase errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var verr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "User not found")

	case errors.As(err, &verr):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.Bool("conflict", errors.Is(err, usecase.ErrUniquenessConflict)),
		)
		utils.ResponseUnprocessable(w, "Validation failed", verr.Fields)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

package adaptor

import (
	"net/http"

	"site-admin/internal/dto/request"
	"site-admin/internal/dto/response"
	"site-admin/internal/usecase"
	"site-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// adminUserPageSize is the fixed page size of the admin users page.
const adminUserPageSize = 10

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// View handles GET /admin/users?search=&page= and returns the page
// component with one page of users as props.
func (h *UserHandler) View(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.UserListRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: adminUserPageSize,
		},
		Search: query.Get("search"),
	}

	users, err := h.service.ListUsers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "render users page")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.Page{
		Component: "Admin/User",
		Props:     map[string]any{"users": users},
		URL:       r.URL.RequestURI(),
	})
}

// ListUsers handles GET /api/admin/users?search=&page=&per_page=
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.UserListRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 0),
		},
		Search: query.Get("search"),
	}

	users, err := h.service.ListUsers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.WriteJSON(w, http.StatusOK, users)
}

// UpdateUser handles PUT/PATCH /api/admin/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req request.UpdateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Warn("Invalid update user body", zap.Error(err), zap.String("user_id", userID))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateUser(r.Context(), userID, &req); err != nil {
		handleServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", nil)
}

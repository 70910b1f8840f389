package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"site-admin/internal/dto/request"
	"site-admin/internal/dto/response"
	"site-admin/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUserService struct {
	listReq   *request.UserListRequest
	listResp  *response.PaginatedResponse[response.UserResponse]
	listErr   error
	updateID  string
	updateReq *request.UpdateUserRequest
	updateErr error
}

func (s *stubUserService) ListUsers(_ context.Context, req *request.UserListRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	s.listReq = req
	return s.listResp, s.listErr
}

func (s *stubUserService) UpdateUser(_ context.Context, userID string, req *request.UpdateUserRequest) error {
	s.updateID = userID
	s.updateReq = req
	return s.updateErr
}

func newUserRouter(svc usecase.UserService) http.Handler {
	h := NewUserHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/admin/users", h.View)
	r.Get("/api/admin/users", h.ListUsers)
	r.Put("/api/admin/users/{id}", h.UpdateUser)
	r.Patch("/api/admin/users/{id}", h.UpdateUser)
	return r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListUsersHandler(t *testing.T) {
	svc := &stubUserService{
		listResp: response.NewPaginatedResponse([]response.UserResponse{{ID: "1", Name: "Ann"}}, 2, 5, 6),
	}
	rec := serve(newUserRouter(svc), http.MethodGet, "/api/admin/users?search=ann&page=2&per_page=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ann", svc.listReq.Search)
	assert.Equal(t, 2, svc.listReq.Page)
	assert.Equal(t, 5, svc.listReq.PerPage)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 6, body["total"])
	assert.EqualValues(t, 2, body["current_page"])
	assert.EqualValues(t, 2, body["last_page"])
	assert.EqualValues(t, 6, body["from"])
	assert.Len(t, body["data"], 1)
}

func TestListUsersHandlerDefaults(t *testing.T) {
	svc := &stubUserService{listResp: response.NewPaginatedResponse[response.UserResponse](nil, 1, 10, 0)}
	rec := serve(newUserRouter(svc), http.MethodGet, "/api/admin/users?page=abc", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.listReq.Page)
	assert.Zero(t, svc.listReq.PerPage)
	assert.JSONEq(t,
		`{"data":[],"total":0,"current_page":1,"per_page":10,"last_page":1,"from":null,"to":null}`,
		rec.Body.String())
}

func TestUserPageView(t *testing.T) {
	svc := &stubUserService{listResp: response.NewPaginatedResponse[response.UserResponse](nil, 3, 10, 0)}
	rec := serve(newUserRouter(svc), http.MethodGet, "/admin/users?page=3&per_page=50&search=bo", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.listReq.Page)
	assert.Equal(t, adminUserPageSize, svc.listReq.PerPage)
	assert.Equal(t, "bo", svc.listReq.Search)

	var page struct {
		Component string `json:"component"`
		URL       string `json:"url"`
		Props     struct {
			Users map[string]any `json:"users"`
		} `json:"props"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, "Admin/User", page.Component)
	assert.Equal(t, "/admin/users?page=3&per_page=50&search=bo", page.URL)
	assert.Contains(t, page.Props.Users, "data")
}

func TestUpdateUserHandler(t *testing.T) {
	verr := &usecase.ValidationError{Fields: map[string]string{"email": "The email has already been taken"}}

	tests := []struct {
		name       string
		method     string
		body       string
		serviceErr error
		wantCode   int
		wantBody   string
	}{
		{
			name:     "success",
			method:   http.MethodPut,
			body:     `{"name":"Ann","email":"ann@example.com","roles":["admin"],"is_banned":true}`,
			wantCode: http.StatusOK,
			wantBody: "User updated successfully",
		},
		{
			name:     "patch is accepted",
			method:   http.MethodPatch,
			body:     `{"name":"Ann","email":"ann@example.com","roles":["user"]}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "malformed body",
			method:   http.MethodPut,
			body:     `{"name":`,
			wantCode: http.StatusBadRequest,
			wantBody: "Invalid request body",
		},
		{
			name:     "trailing data",
			method:   http.MethodPut,
			body:     `{"name":"a"} {"name":"b"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:       "validation failure",
			method:     http.MethodPut,
			body:       `{"name":"Ann","email":"bob@example.com","roles":["user"]}`,
			serviceErr: verr,
			wantCode:   http.StatusUnprocessableEntity,
			wantBody:   "has already been taken",
		},
		{
			name:       "unknown user",
			method:     http.MethodPut,
			body:       `{"name":"Ann","email":"ann@example.com","roles":["user"]}`,
			serviceErr: usecase.ErrUserNotFound,
			wantCode:   http.StatusNotFound,
			wantBody:   "User not found",
		},
		{
			name:       "store failure",
			method:     http.MethodPut,
			body:       `{"name":"Ann","email":"ann@example.com","roles":["user"]}`,
			serviceErr: errors.New("db down"),
			wantCode:   http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubUserService{updateErr: tt.serviceErr}
			rec := serve(newUserRouter(svc), tt.method, "/api/admin/users/abc-123", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			assert.NotContains(t, rec.Body.String(), "db down")
		})
	}
}

func TestUpdateUserHandlerDecodesPointers(t *testing.T) {
	svc := &stubUserService{}
	rec := serve(newUserRouter(svc), http.MethodPut, "/api/admin/users/u-1",
		`{"name":"Ann","email":"ann@example.com","roles":["user"],"phone":""}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-1", svc.updateID)
	require.NotNil(t, svc.updateReq.Phone)
	assert.Empty(t, *svc.updateReq.Phone)
	assert.Nil(t, svc.updateReq.IsBanned)
}

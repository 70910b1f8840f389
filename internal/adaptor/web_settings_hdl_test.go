package adaptor

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"site-admin/internal/dto/request"
	"site-admin/internal/dto/response"
	"site-admin/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubSettingsService struct {
	resp *response.WebSettingsResponse
	err  error
	got  *request.UpdateWebSettingsRequest
}

func (s *stubSettingsService) GetSettings(context.Context) (*response.WebSettingsResponse, error) {
	return s.resp, s.err
}

func (s *stubSettingsService) UpdateSettings(_ context.Context, req *request.UpdateWebSettingsRequest) (*response.WebSettingsResponse, error) {
	s.got = req
	return s.resp, s.err
}

func newSettingsRouter(svc usecase.WebSettingsService) http.Handler {
	h := NewWebSettingsHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/settings", h.GetSettings)
	r.Put("/api/admin/settings", h.UpdateSettings)
	return r
}

func TestGetSettingsHandler(t *testing.T) {
	svc := &stubSettingsService{resp: &response.WebSettingsResponse{Name: "Portal"}}
	rec := serve(newSettingsRouter(svc), http.MethodGet, "/api/settings", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Portal"`)

	svc.err = errors.New("boom")
	rec = serve(newSettingsRouter(svc), http.MethodGet, "/api/settings", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpdateSettingsHandler(t *testing.T) {
	svc := &stubSettingsService{resp: &response.WebSettingsResponse{Name: "New"}}
	rec := serve(newSettingsRouter(svc), http.MethodPut, "/api/admin/settings", `{"name":"New","footer":"f"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "f", svc.got.Footer)

	svc.err = &usecase.ValidationError{Fields: map[string]string{"link_univ": "Must be a valid URL"}}
	rec = serve(newSettingsRouter(svc), http.MethodPut, "/api/admin/settings", `{"link_univ":"x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "link_univ")

	rec = serve(newSettingsRouter(svc), http.MethodPut, "/api/admin/settings", `nope`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

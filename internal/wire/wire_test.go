package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"site-admin/internal/data/entity"
	"site-admin/internal/data/repository"
	"site-admin/internal/data/repository/mocks"
	"site-admin/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*App, *mocks.MockUserRepository, *mocks.MockSessionRepository, *mocks.MockWebSettingsRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	sessions := mocks.NewMockSessionRepository(ctrl)
	settings := mocks.NewMockWebSettingsRepository(ctrl)

	config := &utils.Config{
		Pagination: utils.PaginationConfig{PerPage: 10, MaxPerPage: 100},
		HTTP:       utils.HTTPConfig{MetricsEnabled: true, CORSOrigins: []string{"*"}},
	}
	repo := &repository.Repository{User: users, Session: sessions, WebSettings: settings}
	return Wiring(repo, config, zap.NewNop()), users, sessions, settings
}

func do(app *App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestPublicRoutes(t *testing.T) {
	app, _, _, settings := newTestApp(t)
	settings.EXPECT().Get(gomock.Any()).Return(nil, nil)

	assert.Equal(t, http.StatusOK, do(app, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
	assert.Equal(t, http.StatusOK, do(app, httptest.NewRequest(http.MethodGet, "/api/settings", nil)).Code)

	rec := do(app, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "site_admin_http_requests_total")
}

func TestAdminRoutesRequireSession(t *testing.T) {
	app, _, _, _ := newTestApp(t)

	for _, target := range []string{"/admin/users", "/api/admin/users"} {
		rec := do(app, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	app, users, sessions, _ := newTestApp(t)
	token, userID := uuid.New(), uuid.New()

	sessions.EXPECT().FindValidSession(gomock.Any(), token).Return(&entity.Session{UserID: userID, Token: token}, nil)
	users.EXPECT().FindByID(gomock.Any(), userID).Return(&entity.User{Roles: []entity.UserRole{entity.RoleEditor}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+token.String())
	assert.Equal(t, http.StatusForbidden, do(app, req).Code)
}

func TestAdminListUsers(t *testing.T) {
	app, users, sessions, _ := newTestApp(t)
	token, adminID := uuid.New(), uuid.New()

	sessions.EXPECT().FindValidSession(gomock.Any(), token).Return(&entity.Session{UserID: adminID, Token: token}, nil)
	users.EXPECT().FindByID(gomock.Any(), adminID).Return(&entity.User{Roles: []entity.UserRole{entity.RoleAdmin}}, nil)
	users.EXPECT().Count(gomock.Any(), repository.UserFilter{Search: "ann"}).Return(int64(0), nil)
	users.EXPECT().FindAll(gomock.Any(), repository.UserFilter{Search: "ann"}, 10, 0).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users?search=ann", nil)
	req.Header.Set("Authorization", "Bearer "+token.String())
	rec := do(app, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"data":[],"total":0,"current_page":1,"per_page":10,"last_page":1,"from":null,"to":null}`,
		rec.Body.String())
}

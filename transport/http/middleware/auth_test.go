package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourdesk/config"
	"tourdesk/infras/jwt"
	"tourdesk/infras/otel/mocks"
	"tourdesk/permissions"
	"tourdesk/shared/constant"
	"tourdesk/transport/http/middleware"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "tourdesk-test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireHours = 1

	return cfg
}

// newProtectedRouter mirrors the production middleware order: Auth first,
// RBAC second, routes last so chi can resolve patterns.
func newProtectedRouter(t *testing.T) (*chi.Mux, jwt.JWT) {
	t.Helper()

	jwtService := jwt.New(testConfig())
	perms := permissions.Get()
	require.NotNil(t, perms)

	mw := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), perms)

	router := chi.NewRouter()
	router.Use(mw.Auth)
	router.Use(mw.RBAC)

	ok := func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)
		w.Header().Set("X-Test-Role", role)

		w.WriteHeader(http.StatusOK)
	}

	router.Get("/health", ok)
	router.Post("/v1/bookings", ok)
	router.Get("/v1/bookings", ok)

	return router, jwtService
}

func TestAuth_PublicEndpointsSkipAuthentication(t *testing.T) {
	router, _ := newProtectedRouter(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodPost, "/v1/bookings"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "%s %s should be public", tc.method, tc.path)
	}
}

func TestAuth_MissingToken(t *testing.T) {
	router, _ := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing authorization header")
}

func TestAuth_MalformedHeader(t *testing.T) {
	router, _ := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Basic abc123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid authorization header format")
}

func TestAuth_InvalidToken(t *testing.T) {
	router, _ := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer not.a.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestAuth_ValidAdminToken(t *testing.T) {
	router, jwtService := newProtectedRouter(t)

	token, err := jwtService.GenerateToken(1, "admin", constant.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.RoleAdmin, rec.Header().Get("X-Test-Role"))
}

func TestRBAC_RejectsUnknownRole(t *testing.T) {
	router, jwtService := newProtectedRouter(t)

	token, err := jwtService.GenerateToken(2, "visitor", "viewer")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "access denied")
}

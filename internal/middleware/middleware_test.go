package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"loket-backend/internal/auth"
	"loket-backend/internal/config"
	"loket-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWT() *auth.JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Issuer = "loket-backend"
	cfg.JWT.ExpirationHours = 1
	return auth.NewJWTManager(cfg)
}

func echoActor(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRoleFromContext(r.Context())
	w.Write([]byte(middleware.Actor(r.Context()) + "/" + role))
}

func TestRequireRole(t *testing.T) {
	jwt := newJWT()
	m := middleware.NewAuthMiddleware(jwt)
	h := m.RequireRole(auth.RoleOwner, auth.RoleAdmin)(http.HandlerFunc(echoActor))

	ownerToken, err := jwt.GenerateToken("u-1", "Bu Rina", auth.RoleOwner)
	require.NoError(t, err)
	kasirToken, err := jwt.GenerateToken("u-2", "", auth.RoleKasir)
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "no header", wantCode: http.StatusUnauthorized},
		{name: "not bearer", header: "Token " + ownerToken, wantCode: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc", wantCode: http.StatusUnauthorized},
		{name: "wrong role", header: "Bearer " + kasirToken, wantCode: http.StatusForbidden},
		{name: "allowed", header: "Bearer " + ownerToken, wantCode: http.StatusOK, wantBody: "Bu Rina/owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAuthenticateFallsBackToUserID(t *testing.T) {
	jwt := newJWT()
	token, err := jwt.GenerateToken("u-7", "", auth.RoleLoket)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	middleware.NewAuthMiddleware(jwt).Authenticate(http.HandlerFunc(echoActor)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-7/loket", rec.Body.String())
}

func TestWebsocketTokenFromQuery(t *testing.T) {
	jwt := newJWT()
	token, err := jwt.GenerateToken("u-1", "Bu Rina", auth.RoleOwner)
	require.NoError(t, err)
	h := middleware.NewAuthMiddleware(jwt).Authenticate(http.HandlerFunc(echoActor))

	req := httptest.NewRequest(http.MethodGet, "/api/alerts/stream?token="+token, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "query tokens are only for upgrades")

	req.Header.Set("Upgrade", "websocket")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPanicRecovery(t *testing.T) {
	h := middleware.PanicRecovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
}

func TestAPILoggingUsesRouteTemplate(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	logging := middleware.NewAPILoggingMiddleware(logger)
	router := mux.NewRouter()
	router.Use(logging.Handler, middleware.MetricsMiddleware)
	router.HandleFunc("/api/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders/abc-123", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	logging.Close()

	out := buf.String()
	assert.Contains(t, out, `"path":"/api/orders/{id}"`)
	assert.Contains(t, out, `"status":404`)
	assert.NotContains(t, out, "abc-123")
	assert.NotContains(t, out, `"/health"`)
}

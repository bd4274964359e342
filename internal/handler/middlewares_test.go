package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omparkhi/JobWeb/internal/config"
	"github.com/omparkhi/JobWeb/internal/domain"
)

// newTestHandler wires a handler with no backing services: enough to drive
// the auth and role middlewares, which decide before any service call.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 3600

	h, err := NewHandler(cfg, nil, nil, nil, nil)
	require.NoError(t, err)
	h.RegisterRoutes()

	return h
}

func tokenFor(t *testing.T, h *Handler, id int64, role domain.Role) string {
	t.Helper()

	token, err := h.signToken(&domain.User{ID: id, Role: role})
	require.NoError(t, err)
	return token
}

func doRequest(h *Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)
	return rec
}

func TestAuthRejectsMissingAndMalformedCredentials(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/candidate/profile", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/candidate/profile", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec = httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(h, http.MethodGet, "/candidate/profile", "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsTokenSignedWithWrongSecret(t *testing.T) {
	h := newTestHandler(t)

	other := newTestHandler(t)
	other.config.JWT.Secret = "another-secret"
	token := tokenFor(t, other, 1, domain.RoleCandidate)

	rec := doRequest(h, http.MethodGet, "/candidate/profile", token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequiredRoleGates(t *testing.T) {
	h := newTestHandler(t)

	candidate := tokenFor(t, h, 1, domain.RoleCandidate)
	company := tokenFor(t, h, 2, domain.RoleCompany)

	// Candidates cannot post jobs.
	rec := doRequest(h, http.MethodPost, "/jobs", candidate)
	require.Equal(t, http.StatusForbidden, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "insufficient permissions", resp.Message)

	// Companies cannot apply, withdraw, or read candidate profiles.
	rec = doRequest(h, http.MethodPost, "/applications", company)
	require.Equal(t, http.StatusForbidden, rec.Code)
	rec = doRequest(h, http.MethodDelete, "/applications/1", company)
	require.Equal(t, http.StatusForbidden, rec.Code)
	rec = doRequest(h, http.MethodGet, "/candidate/profile", company)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Candidates cannot review applications or enter admin routes.
	rec = doRequest(h, http.MethodPut, "/applications/1/status", candidate)
	require.Equal(t, http.StatusForbidden, rec.Code)
	rec = doRequest(h, http.MethodGet, "/admin/analytics", candidate)
	require.Equal(t, http.StatusForbidden, rec.Code)
	rec = doRequest(h, http.MethodGet, "/admin/analytics", company)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCurrentUserID(t *testing.T) {
	h := newTestHandler(t)
	token := tokenFor(t, h, 42, domain.RoleCandidate)

	var captured int64
	h.Mux.With(h.auth).Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		id, err := h.currentUserID(r)
		require.NoError(t, err)
		captured = id
		w.WriteHeader(http.StatusOK)
	})

	rec := doRequest(h, http.MethodGet, "/whoami", token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(42), captured)
}

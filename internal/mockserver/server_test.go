package mockserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/devmode"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m), rr.Body.String())
	return m
}

func TestHealth(t *testing.T) {
	r := NewRouter("/api", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, decodeBody(t, rr)["success"])
}

func TestMockLogin(t *testing.T) {
	r := NewRouter("/api", func() time.Time { return fixedNow })
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.c","password":"x"}`))
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	body := decodeBody(t, rr)
	data := body["data"].(map[string]any)
	assert.Equal(t, devmode.MockTokenPrefix+"1772366400000", data["token"])
	assert.Equal(t, devmode.MockAdminEmail, data["user"].(map[string]any)["email"])
}

func TestMockBlogsKeepsQuery(t *testing.T) {
	r := NewRouter("/api", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/blogs?page=1&limit=10&search=water", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	data := decodeBody(t, rr)["data"].(map[string]any)
	assert.Len(t, data["blogs"], 2)
}

func TestMockDefault(t *testing.T) {
	r := NewRouter("/api/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/donations", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Mock response - Backend not connected", body["message"])
	assert.Equal(t, map[string]any{}, body["data"])
}

func TestOutsidePrefixIsNotFound(t *testing.T) {
	r := NewRouter("/api", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/other/blogs", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, false, decodeBody(t, rr)["success"])
}

func TestCORSPreflight(t *testing.T) {
	r := NewRouter("/api", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/api/auth/me", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestMetricsExposed(t *testing.T) {
	r := NewRouter("/api", nil)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	out, _ := io.ReadAll(rr.Body)
	assert.Contains(t, string(out), `donate_client_mock_responses_total{pattern="me"}`)
}

// The client talks to the mock backend like to the real one.
func TestClientAgainstMockServer(t *testing.T) {
	srv := httptest.NewServer(NewRouter("/api", nil))
	defer srv.Close()

	c, err := client.New(srv.URL+"/api", nil)
	require.NoError(t, err)
	ctx := context.Background()

	login := c.Login(ctx, client.LoginRequest{Email: "admin@chimbohelpinghands.org", Password: "admin"})
	require.True(t, login.OK())
	assert.True(t, c.IsAuthenticated())

	stats := c.GetDashboardStats(ctx)
	require.True(t, stats.OK())
	assert.Len(t, stats.Data.RecentDonations, 2)
}

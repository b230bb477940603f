package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/tokenstore"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// backend is a minimal stand-in for the donation API.
func backend(t *testing.T, validToken string) *httptest.Server {
	t.Helper()
	user := map[string]any{"id": 5, "email": "grace@example.com", "first_name": "Grace", "role": "admin"}
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "right" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"token": validToken, "user": user}})
	})
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "data": map[string]any{
			"token": validToken,
			"user":  map[string]any{"id": 6, "email": "new@example.com", "role": "user"},
		}})
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": user})
	})
	mux.HandleFunc("/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		user["first_name"] = "Grace B."
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": user})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRestore_NoToken(t *testing.T) {
	c, err := client.New("http://127.0.0.1:1", nil)
	require.NoError(t, err)
	s := NewSession(c)
	require.NoError(t, s.Restore(context.Background()))
	assert.False(t, s.IsAuthenticated())
}

func TestRestore_ValidToken(t *testing.T) {
	srv := backend(t, "good")
	store := tokenstore.NewMemory()
	require.NoError(t, store.Save("good"))

	c, err := client.New(srv.URL, store)
	require.NoError(t, err)
	s := NewSession(c)
	require.NoError(t, s.Restore(context.Background()))

	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "grace@example.com", u.Email)
	assert.True(t, s.IsAdmin())
}

func TestRestore_InvalidTokenIsCleared(t *testing.T) {
	srv := backend(t, "good")
	store := tokenstore.NewMemory()
	require.NoError(t, store.Save("stale"))

	c, err := client.New(srv.URL, store)
	require.NoError(t, err)
	s := NewSession(c)
	err = s.Restore(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Invalid token", err.Error())
	assert.True(t, client.IsServer(err))

	assert.False(t, s.IsAuthenticated())
	assert.False(t, c.IsAuthenticated())
	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

type downTransport struct{}

func (downTransport) RoundTrip(context.Context, *client.Request) (*client.Response, error) {
	return nil, errors.New("connection refused")
}

func TestRestore_UnreachableKeepsToken(t *testing.T) {
	store := tokenstore.NewMemory()
	require.NoError(t, store.Save("good"))

	c, err := client.New("", store, client.WithTransport(downTransport{}))
	require.NoError(t, err)
	s := NewSession(c)
	err = s.Restore(context.Background())
	require.Error(t, err)
	assert.True(t, client.IsTransport(err))
	assert.False(t, s.IsAuthenticated())
	assert.True(t, c.IsAuthenticated())
}

func TestLoginAndLogout(t *testing.T) {
	srv := backend(t, "good")
	c, err := client.New(srv.URL, nil)
	require.NoError(t, err)
	s := NewSession(c)
	ctx := context.Background()

	err = s.Login(ctx, "grace@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.False(t, s.IsAuthenticated())

	require.NoError(t, s.Login(ctx, "grace@example.com", "right"))
	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsAdmin())
	assert.True(t, c.IsAuthenticated())

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.False(t, c.IsAuthenticated())
}

func TestLogin_ValidationMessage(t *testing.T) {
	c, err := client.New("http://127.0.0.1:1", nil)
	require.NoError(t, err)
	s := NewSession(c)
	err = s.Login(context.Background(), "", "x")
	require.Error(t, err)
	assert.True(t, client.IsValidation(err))
	assert.Equal(t, "email is required", err.Error())
}

func TestRegister(t *testing.T) {
	srv := backend(t, "good")
	c, err := client.New(srv.URL, nil)
	require.NoError(t, err)
	s := NewSession(c)
	require.NoError(t, s.Register(context.Background(), client.RegisterRequest{
		Email: "new@example.com", Password: "pw", FirstName: "New", LastName: "User",
	}))
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
}

func TestUpdateProfile_RefreshesUser(t *testing.T) {
	srv := backend(t, "good")
	c, err := client.New(srv.URL, nil)
	require.NoError(t, err)
	s := NewSession(c)
	ctx := context.Background()
	require.NoError(t, s.Login(ctx, "grace@example.com", "right"))

	name := "Grace B."
	require.NoError(t, s.UpdateProfile(ctx, client.ProfileUpdate{FirstName: &name}))
	u, _ := s.User()
	assert.Equal(t, "Grace B.", u.FirstName)
}

func TestFailureFallbackMessage(t *testing.T) {
	err := failure(client.Envelope[int]{Kind: client.KindUnstructured}, "Login failed")
	assert.Equal(t, "Login failed", err.Error())
}

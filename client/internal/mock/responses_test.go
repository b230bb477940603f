package mock

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/types"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/devmode"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMatch(t *testing.T) {
	cases := []struct {
		path, method, want string
	}{
		{"/auth/login", "POST", PatternLogin},
		{"/auth/login", "GET", PatternDefault},
		{"/auth/register", "POST", PatternRegister},
		{"/auth/register", "PUT", PatternDefault},
		{"/auth/me", "GET", PatternMe},
		{"/blogs?page=1&limit=10", "GET", PatternBlogs},
		{"/blogs/7", "DELETE", PatternBlogs},
		{"/admin/dashboard", "GET", PatternDashboard},
		{"/admin/users?page=1&limit=20", "GET", PatternDefault},
		{"/donations", "POST", PatternDefault},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Match(c.path, c.method), "%s %s", c.method, c.path)
	}
}

func TestRespond_Login(t *testing.T) {
	pattern, body := Respond("/auth/login", "POST", fixedNow)
	require.Equal(t, PatternLogin, pattern)

	var env struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Data    types.AuthPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	assert.True(t, env.Success)
	assert.Equal(t, "Login successful", env.Message)
	assert.True(t, strings.HasPrefix(env.Data.Token, devmode.MockTokenPrefix))
	assert.Equal(t, devmode.MockTokenPrefix+"1772366400000", env.Data.Token)
	assert.Equal(t, devmode.MockAdminEmail, env.Data.User.Email)
	assert.Equal(t, types.RoleAdmin, env.Data.User.Role)
	assert.Equal(t, int64(1), env.Data.User.ID)
}

func TestRespond_Register(t *testing.T) {
	_, body := Respond("/auth/register", "POST", fixedNow)
	var env struct {
		Data types.AuthPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, fixedNow.UnixMilli(), env.Data.User.ID)
	assert.Equal(t, "user@example.com", env.Data.User.Email)
	assert.Equal(t, types.RoleUser, env.Data.User.Role)
}

func TestRespond_Blogs(t *testing.T) {
	_, body := Respond("/blogs?page=1&limit=10&search=water", "GET", fixedNow)
	var env struct {
		Data types.BlogList `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	require.Len(t, env.Data.Blogs, 2)
	assert.Equal(t, "building-wells-rural-kenya", env.Data.Blogs[0].Slug)
	assert.Equal(t, types.Pagination{TotalPages: 1, CurrentPage: 1, Total: 2}, env.Data.Pagination)
}

func TestRespond_Dashboard(t *testing.T) {
	_, body := Respond("/admin/dashboard", "GET", fixedNow)
	var env struct {
		Data types.DashboardStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, 125000.0, env.Data.Overview.TotalRaised)
	assert.Len(t, env.Data.RecentDonations, 2)
}

func TestRespond_Default(t *testing.T) {
	pattern, body := Respond("/events", "GET", fixedNow)
	assert.Equal(t, PatternDefault, pattern)
	assert.JSONEq(t, `{"success":true,"message":"Mock response - Backend not connected","data":{}}`, string(body))
}

// Package mock holds the canned backend responses used when developing
// without a live backend. Matching is by substring on the request path plus
// the HTTP method, checked in a fixed order.
package mock

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/types"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/devmode"
)

// Pattern names, also used as metric labels.
const (
	PatternLogin     = "login"
	PatternRegister  = "register"
	PatternMe        = "me"
	PatternBlogs     = "blogs"
	PatternDashboard = "dashboard"
	PatternDefault   = "default"
)

// DefaultMessage is the message of the placeholder envelope.
const DefaultMessage = "Mock response - Backend not connected"

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// Match returns the pattern name a request would be answered with.
func Match(path, method string) string {
	switch {
	case strings.Contains(path, "/auth/login") && method == "POST":
		return PatternLogin
	case strings.Contains(path, "/auth/register") && method == "POST":
		return PatternRegister
	case strings.Contains(path, "/auth/me"):
		return PatternMe
	case strings.Contains(path, "/blogs"):
		return PatternBlogs
	case strings.Contains(path, "/admin/dashboard"):
		return PatternDashboard
	default:
		return PatternDefault
	}
}

// Respond returns the matched pattern and the JSON envelope for it. now
// stamps generated tokens, ids and timestamps.
func Respond(path, method string, now time.Time) (string, []byte) {
	pattern := Match(path, method)
	var env envelope
	switch pattern {
	case PatternLogin:
		env = envelope{Success: true, Message: "Login successful", Data: types.AuthPayload{
			Token: Token(now),
			User:  AdminUser(now),
		}}
	case PatternRegister:
		env = envelope{Success: true, Message: "Registration successful", Data: types.AuthPayload{
			Token: Token(now),
			User: types.User{
				ID:        now.UnixMilli(),
				Email:     "user@example.com",
				FirstName: "John",
				LastName:  "Doe",
				Role:      types.RoleUser,
				IsActive:  true,
				CreatedAt: now.UTC(),
			},
		}}
	case PatternMe:
		env = envelope{Success: true, Data: AdminUser(now)}
	case PatternBlogs:
		env = envelope{Success: true, Data: blogList()}
	case PatternDashboard:
		env = envelope{Success: true, Data: dashboard()}
	default:
		env = envelope{Success: true, Message: DefaultMessage, Data: struct{}{}}
	}
	// All values above are plain structs; marshalling cannot fail.
	b, _ := json.Marshal(env)
	return pattern, b
}

// Token mints a mock session token.
func Token(now time.Time) string {
	return devmode.MockTokenPrefix + strconv.FormatInt(now.UnixMilli(), 10)
}

// AdminUser is the fixed admin account served by the mock backend.
func AdminUser(now time.Time) types.User {
	return types.User{
		ID:        1,
		Email:     devmode.MockAdminEmail,
		FirstName: "Admin",
		LastName:  "User",
		Role:      types.RoleAdmin,
		Phone:     "+1234567890",
		Country:   "United States",
		IsActive:  true,
		CreatedAt: now.UTC(),
	}
}

func blogList() types.BlogList {
	return types.BlogList{
		Blogs: []types.Blog{
			{
				ID:            1,
				Title:         "Building Wells in Rural Kenya",
				Slug:          "building-wells-rural-kenya",
				Excerpt:       "Learn about our successful water well project that brought clean water to 500+ families in rural Kenya.",
				FeaturedImage: "https://images.pexels.com/photos/6646918/pexels-photo-6646918.jpeg?auto=compress&cs=tinysrgb&w=800",
				Author:        "Admin User",
				CreatedAt:     mustTime("2024-01-15T10:00:00Z"),
				Tags:          []string{"water", "kenya", "community"},
				Status:        types.BlogStatusPublished,
				Content:       "<p>Our latest water project in rural Kenya has been a tremendous success...</p>",
			},
			{
				ID:            2,
				Title:         "Education Changes Everything",
				Slug:          "education-changes-everything",
				Excerpt:       "Discover how our education programs are transforming communities and creating lasting change.",
				FeaturedImage: "https://images.pexels.com/photos/8613089/pexels-photo-8613089.jpeg?auto=compress&cs=tinysrgb&w=800",
				Author:        "Admin User",
				CreatedAt:     mustTime("2024-01-10T10:00:00Z"),
				Tags:          []string{"education", "community", "development"},
				Status:        types.BlogStatusPublished,
				Content:       "<p>Education is the foundation of sustainable development...</p>",
			},
		},
		Pagination: types.Pagination{TotalPages: 1, CurrentPage: 1, Total: 2},
	}
}

func dashboard() types.DashboardStats {
	return types.DashboardStats{
		Overview: types.DashboardOverview{
			TotalDonations:      150,
			TotalRaised:         125000,
			SuccessfulDonations: 145,
			PendingDonations:    5,
			TotalUsers:          1250,
			AdminUsers:          3,
			NewUsers30d:         45,
			TotalBlogs:          12,
			PublishedBlogs:      10,
			DraftBlogs:          2,
		},
		RecentDonations: []types.Donation{
			{
				ID:            1,
				DonorName:     "John Doe",
				DonorEmail:    "john@example.com",
				Amount:        100,
				Currency:      "USD",
				PaymentStatus: "completed",
				CreatedAt:     mustTime("2024-01-15T10:00:00Z"),
			},
			{
				ID:            2,
				DonorName:     "Jane Smith",
				DonorEmail:    "jane@example.com",
				Amount:        250,
				Currency:      "USD",
				PaymentStatus: "completed",
				CreatedAt:     mustTime("2024-01-14T15:30:00Z"),
			},
		},
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

package types

import (
	"encoding/json"
	"time"
)

// ------------------------------
// Domain Types
// ------------------------------

// User represents an account on the donation site.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone,omitempty"`
	Country   string    `json:"country,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// AuthPayload is returned by login and registration.
type AuthPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Blog is a published or draft blog post.
type Blog struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Content         string    `json:"content"`
	Excerpt         string    `json:"excerpt,omitempty"`
	FeaturedImage   string    `json:"featured_image,omitempty"`
	Author          string    `json:"author,omitempty"`
	Status          string    `json:"status"`
	Tags            []string  `json:"tags,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Pagination describes a page of a listing.
type Pagination struct {
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Total       int `json:"total"`
}

// Donation is a single gift, one-time or recurring.
type Donation struct {
	ID            int64     `json:"id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Frequency     string    `json:"frequency,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	PaymentID     string    `json:"payment_id,omitempty"`
	DonorName     string    `json:"donor_name"`
	DonorEmail    string    `json:"donor_email"`
	DonorPhone    string    `json:"donor_phone,omitempty"`
	DonorAddress  string    `json:"donor_address,omitempty"`
	DonorCity     string    `json:"donor_city,omitempty"`
	DonorZip      string    `json:"donor_zip,omitempty"`
	DonorCountry  string    `json:"donor_country,omitempty"`
	IsAnonymous   bool      `json:"is_anonymous"`
	CreatedAt     time.Time `json:"created_at"`
}

// DashboardOverview holds the headline admin numbers.
type DashboardOverview struct {
	TotalDonations      int     `json:"total_donations"`
	TotalRaised         float64 `json:"total_raised"`
	SuccessfulDonations int     `json:"successful_donations"`
	PendingDonations    int     `json:"pending_donations"`
	TotalUsers          int     `json:"total_users"`
	AdminUsers          int     `json:"admin_users"`
	NewUsers30d         int     `json:"new_users_30d"`
	TotalBlogs          int     `json:"total_blogs"`
	PublishedBlogs      int     `json:"published_blogs"`
	DraftBlogs          int     `json:"draft_blogs"`
}

// Content is a keyed, editable block of site copy.
type Content struct {
	ID       int64           `json:"id"`
	KeyName  string          `json:"key_name"`
	Title    string          `json:"title,omitempty"`
	Content  json.RawMessage `json:"content"`
	Type     string          `json:"type"`
	IsActive bool            `json:"is_active"`
}

// Testimonial is a supporter quote shown on the site.
type Testimonial struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role,omitempty"`
	Content    string `json:"content"`
	Image      string `json:"image,omitempty"`
	Rating     int    `json:"rating"`
	IsFeatured bool   `json:"is_featured"`
	Status     string `json:"status"`
}

// Event is an upcoming, ongoing or past fundraising event.
type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	EventDate   string `json:"event_date"`
	Location    string `json:"location,omitempty"`
	Image       string `json:"image,omitempty"`
	Status      string `json:"status"`
}

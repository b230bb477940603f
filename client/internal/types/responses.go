package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// BlogList wraps the blog listing response.
type BlogList struct {
	Blogs      []Blog     `json:"blogs"`
	Pagination Pagination `json:"pagination"`
}

// UserList wraps the admin user listing response.
type UserList struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

// DonationList wraps donation listings (own donations and admin view).
type DonationList struct {
	Donations  []Donation `json:"donations"`
	Pagination Pagination `json:"pagination"`
}

// DashboardStats is the admin dashboard payload.
type DashboardStats struct {
	Overview        DashboardOverview `json:"overview"`
	RecentDonations []Donation        `json:"recentDonations"`
}

// PaymentIntent is returned by the Stripe intent endpoint.
type PaymentIntent struct {
	ClientSecret    string `json:"client_secret,omitempty"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
}

// Raw is used for endpoints whose payload shape varies by backend version.
type Raw = json.RawMessage

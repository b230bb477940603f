package client

import "github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/types"

// Public type aliases so callers import only the client package.
type (
	// Requests
	LoginRequest          = types.LoginRequest
	RegisterRequest       = types.RegisterRequest
	ProfileUpdate         = types.ProfileUpdate
	CreateBlogRequest     = types.CreateBlogRequest
	UpdateBlogRequest     = types.UpdateBlogRequest
	CreateDonationRequest = types.CreateDonationRequest
	StripeIntentRequest   = types.StripeIntentRequest
	SaveContentRequest    = types.SaveContentRequest

	// Domain entities
	User              = types.User
	AuthPayload       = types.AuthPayload
	Blog              = types.Blog
	Pagination        = types.Pagination
	Donation          = types.Donation
	DashboardOverview = types.DashboardOverview
	Content           = types.Content
	Testimonial       = types.Testimonial
	Event             = types.Event

	// Responses
	BlogList       = types.BlogList
	UserList       = types.UserList
	DonationList   = types.DonationList
	DashboardStats = types.DashboardStats
	PaymentIntent  = types.PaymentIntent
	Raw            = types.Raw
)

// Enumerations accepted by the backend.
const (
	RoleUser  = types.RoleUser
	RoleAdmin = types.RoleAdmin

	BlogStatusDraft     = types.BlogStatusDraft
	BlogStatusPublished = types.BlogStatusPublished

	FrequencyOneTime = types.FrequencyOneTime
	FrequencyMonthly = types.FrequencyMonthly

	PaymentStripe      = types.PaymentStripe
	PaymentPayPal      = types.PaymentPayPal
	PaymentFlutterwave = types.PaymentFlutterwave

	ContentTypeText = types.ContentTypeText
	ContentTypeHTML = types.ContentTypeHTML
	ContentTypeJSON = types.ContentTypeJSON
)

package types

import "encoding/json"

// ------------------------------
// Request Types
// ------------------------------
//
// Input types use Go field names; Body methods reshape them into the
// snake_case wire bodies the backend expects, applying the same defaults the
// web frontend applies.

// LoginRequest carries credentials for /auth/login.
type LoginRequest struct {
	Email    string
	Password string
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Body returns the wire body.
func (r LoginRequest) Body() any { return loginBody{Email: r.Email, Password: r.Password} }

// RegisterRequest carries the fields for /auth/register.
type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Country   string
}

type registerBody struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Country   string `json:"country,omitempty"`
}

// Body returns the wire body.
func (r RegisterRequest) Body() any {
	return registerBody{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Country:   r.Country,
	}
}

// ProfileUpdate is a partial profile update; nil fields are not sent. A
// field set to an empty string is sent as "" and clears the stored value.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Country   *string
}

type profileBody struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Country   *string `json:"country,omitempty"`
}

// Body returns the wire body.
func (r ProfileUpdate) Body() any {
	return profileBody{FirstName: r.FirstName, LastName: r.LastName, Phone: r.Phone, Country: r.Country}
}

// CreateBlogRequest carries a new blog post. Status defaults to draft.
type CreateBlogRequest struct {
	Title           string
	Content         string
	Excerpt         string
	FeaturedImage   string
	Tags            []string
	Status          string
	MetaDescription string
}

type blogBody struct {
	Title           *string  `json:"title,omitempty"`
	Content         *string  `json:"content,omitempty"`
	Excerpt         *string  `json:"excerpt,omitempty"`
	FeaturedImage   *string  `json:"featured_image,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Status          *string  `json:"status,omitempty"`
	MetaDescription *string  `json:"meta_description,omitempty"`
}

// Body returns the wire body.
func (r CreateBlogRequest) Body() any {
	status := r.Status
	if status == "" {
		status = BlogStatusDraft
	}
	return blogBody{
		Title:           &r.Title,
		Content:         &r.Content,
		Excerpt:         optional(r.Excerpt),
		FeaturedImage:   optional(r.FeaturedImage),
		Tags:            r.Tags,
		Status:          &status,
		MetaDescription: optional(r.MetaDescription),
	}
}

// UpdateBlogRequest is a partial update; nil fields are left untouched.
type UpdateBlogRequest struct {
	Title           *string
	Content         *string
	Excerpt         *string
	FeaturedImage   *string
	Tags            []string
	Status          *string
	MetaDescription *string
}

// Body returns the wire body.
func (r UpdateBlogRequest) Body() any {
	return blogBody{
		Title:           r.Title,
		Content:         r.Content,
		Excerpt:         r.Excerpt,
		FeaturedImage:   r.FeaturedImage,
		Tags:            r.Tags,
		Status:          r.Status,
		MetaDescription: r.MetaDescription,
	}
}

// CreateDonationRequest carries a donation from the donate form.
type CreateDonationRequest struct {
	Amount        float64
	Currency      string
	Frequency     string
	PaymentMethod string
	DonorName     string
	DonorEmail    string
	DonorPhone    string
	DonorAddress  string
	DonorCity     string
	DonorZip      string
	DonorCountry  string
	IsAnonymous   bool
}

type donationBody struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Frequency     string  `json:"frequency"`
	PaymentMethod string  `json:"payment_method"`
	DonorName     string  `json:"donor_name"`
	DonorEmail    string  `json:"donor_email"`
	DonorPhone    string  `json:"donor_phone,omitempty"`
	DonorAddress  string  `json:"donor_address,omitempty"`
	DonorCity     string  `json:"donor_city,omitempty"`
	DonorZip      string  `json:"donor_zip,omitempty"`
	DonorCountry  string  `json:"donor_country,omitempty"`
	IsAnonymous   bool    `json:"is_anonymous"`
}

// Body returns the wire body.
func (r CreateDonationRequest) Body() any {
	return donationBody{
		Amount:        r.Amount,
		Currency:      r.Currency,
		Frequency:     r.Frequency,
		PaymentMethod: r.PaymentMethod,
		DonorName:     r.DonorName,
		DonorEmail:    r.DonorEmail,
		DonorPhone:    r.DonorPhone,
		DonorAddress:  r.DonorAddress,
		DonorCity:     r.DonorCity,
		DonorZip:      r.DonorZip,
		DonorCountry:  r.DonorCountry,
		IsAnonymous:   r.IsAnonymous,
	}
}

// StripeIntentRequest asks the backend to open a Stripe payment intent.
// The payments endpoint takes camelCase keys, unlike the rest of the API.
type StripeIntentRequest struct {
	DonationID int64   `json:"donationId"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
}

// Body returns the wire body.
func (r StripeIntentRequest) Body() any { return r }

// SaveContentRequest creates or replaces a content block. Type defaults to
// text and IsActive defaults to true when nil.
type SaveContentRequest struct {
	KeyName  string
	Title    string
	Content  json.RawMessage
	Type     string
	IsActive *bool
}

type contentBody struct {
	KeyName  string          `json:"key_name"`
	Title    string          `json:"title,omitempty"`
	Content  json.RawMessage `json:"content"`
	Type     string          `json:"type"`
	IsActive bool            `json:"is_active"`
}

func (r SaveContentRequest) body() contentBody {
	typ := r.Type
	if typ == "" {
		typ = ContentTypeText
	}
	content := r.Content
	if len(content) == 0 {
		content = json.RawMessage("null")
	}
	return contentBody{
		KeyName:  r.KeyName,
		Title:    r.Title,
		Content:  content,
		Type:     typ,
		IsActive: r.IsActive == nil || *r.IsActive,
	}
}

// Body returns the wire body.
func (r SaveContentRequest) Body() any { return r.body() }

// BulkContentBody wraps several content updates for /content/bulk-update.
func BulkContentBody(updates []SaveContentRequest) any {
	out := struct {
		Updates []contentBody `json:"updates"`
	}{Updates: make([]contentBody, 0, len(updates))}
	for _, u := range updates {
		out.Updates = append(out.Updates, u.body())
	}
	return out
}

// StatusBody is the body of the user and content status toggles.
func StatusBody(active bool) any {
	return struct {
		IsActive bool `json:"is_active"`
	}{IsActive: active}
}

// RoleBody is the body of the user role change.
func RoleBody(role string) any {
	return struct {
		Role string `json:"role"`
	}{Role: role}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

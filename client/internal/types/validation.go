package types

import (
	"strings"

	"github.com/go-openapi/strfmt"

	clienterrors "github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/errors"
)

// Enumerations accepted by the backend.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"

	FrequencyOneTime = "one-time"
	FrequencyMonthly = "monthly"

	PaymentStripe      = "stripe"
	PaymentPayPal      = "paypal"
	PaymentFlutterwave = "flutterwave"

	ContentTypeText = "text"
	ContentTypeHTML = "html"
	ContentTypeJSON = "json"
)

// ------------------------------
// Call-site validation
// ------------------------------
//
// These checks only reject input the backend can never accept; the server
// remains the authority on everything else.

// Validate checks login input.
func (r LoginRequest) Validate() error {
	if err := validateEmail("email", r.Email); err != nil {
		return err
	}
	return required("password", r.Password)
}

// Validate checks registration input.
func (r RegisterRequest) Validate() error {
	if err := validateEmail("email", r.Email); err != nil {
		return err
	}
	if err := required("password", r.Password); err != nil {
		return err
	}
	if err := required("firstName", r.FirstName); err != nil {
		return err
	}
	return required("lastName", r.LastName)
}

// Validate checks a new blog post.
func (r CreateBlogRequest) Validate() error {
	if err := required("title", r.Title); err != nil {
		return err
	}
	if err := required("content", r.Content); err != nil {
		return err
	}
	if r.Status != "" {
		return oneOf("status", r.Status, BlogStatusDraft, BlogStatusPublished)
	}
	return nil
}

// Validate checks a partial blog update.
func (r UpdateBlogRequest) Validate() error {
	if r.Status != nil {
		return oneOf("status", *r.Status, BlogStatusDraft, BlogStatusPublished)
	}
	return nil
}

// Validate checks a donation before it is submitted.
func (r CreateDonationRequest) Validate() error {
	if r.Amount <= 0 {
		return clienterrors.NewValidationError("amount", "must be greater than 0")
	}
	if err := required("currency", r.Currency); err != nil {
		return err
	}
	if err := oneOf("frequency", r.Frequency, FrequencyOneTime, FrequencyMonthly); err != nil {
		return err
	}
	if err := oneOf("paymentMethod", r.PaymentMethod, PaymentStripe, PaymentPayPal, PaymentFlutterwave); err != nil {
		return err
	}
	if err := required("donorName", r.DonorName); err != nil {
		return err
	}
	return validateEmail("donorEmail", r.DonorEmail)
}

// Validate checks a Stripe intent request.
func (r StripeIntentRequest) Validate() error {
	if err := ValidateID("donationId", r.DonationID); err != nil {
		return err
	}
	if r.Amount <= 0 {
		return clienterrors.NewValidationError("amount", "must be greater than 0")
	}
	return required("currency", r.Currency)
}

// Validate checks a content block.
func (r SaveContentRequest) Validate() error {
	if err := required("keyName", r.KeyName); err != nil {
		return err
	}
	if r.Type != "" {
		return oneOf("type", r.Type, ContentTypeText, ContentTypeHTML, ContentTypeJSON)
	}
	return nil
}

// ValidateRole checks a user role.
func ValidateRole(role string) error {
	return oneOf("role", role, RoleUser, RoleAdmin)
}

// ValidateID rejects non-positive numeric identifiers.
func ValidateID(field string, id int64) error {
	if id <= 0 {
		return clienterrors.NewValidationError(field, "must be a positive id")
	}
	return nil
}

// ValidateKey rejects empty path keys (slugs, content keys, countries).
func ValidateKey(field, key string) error {
	return required(field, key)
}

func required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return clienterrors.NewValidationError(field, "is required")
	}
	return nil
}

func validateEmail(field, v string) error {
	if err := required(field, v); err != nil {
		return err
	}
	if !strfmt.IsEmail(v) {
		return clienterrors.NewValidationError(field, "must be a valid email address")
	}
	return nil
}

func oneOf(field, v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return clienterrors.NewValidationError(field, "must be one of "+strings.Join(allowed, ", "))
}

package client

import (
	"context"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/api"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/types"
)

// CreateDonation records a donation. Anonymous donations may be made
// without a session token.
func (c *Client) CreateDonation(ctx context.Context, req CreateDonationRequest) Envelope[Donation] {
	if err := req.Validate(); err != nil {
		return invalid[Donation](err)
	}
	return request[Donation](ctx, c, api.CreateDonation(req))
}

// GetUserDonations lists the caller's own donations.
func (c *Client) GetUserDonations(ctx context.Context, page, limit int) Envelope[DonationList] {
	return request[DonationList](ctx, c, api.MyDonations(page, limit))
}

// GetDonationStats returns aggregate donation figures. The payload shape
// varies between backend versions, so it is returned undecoded.
func (c *Client) GetDonationStats(ctx context.Context) Envelope[Raw] {
	return request[Raw](ctx, c, api.DonationStats())
}

// CreateStripePaymentIntent asks the backend to open a Stripe intent for an
// existing donation. The card flow itself happens in the payment processor.
func (c *Client) CreateStripePaymentIntent(ctx context.Context, req StripeIntentRequest) Envelope[PaymentIntent] {
	if err := req.Validate(); err != nil {
		return invalid[PaymentIntent](err)
	}
	return request[PaymentIntent](ctx, c, api.CreateStripeIntent(req))
}

// GetPaymentMethods lists the payment methods offered in country.
func (c *Client) GetPaymentMethods(ctx context.Context, country string) Envelope[Raw] {
	if err := types.ValidateKey("country", country); err != nil {
		return invalid[Raw](err)
	}
	return request[Raw](ctx, c, api.PaymentMethods(country))
}

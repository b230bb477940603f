package client

import (
	"context"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/api"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/types"
)

// Admin operations. All require an admin token; the backend enforces it.

func (c *Client) GetDashboardStats(ctx context.Context) Envelope[DashboardStats] {
	return request[DashboardStats](ctx, c, api.DashboardStats())
}

func (c *Client) GetUsers(ctx context.Context, page, limit int, search string) Envelope[UserList] {
	return request[UserList](ctx, c, api.ListUsers(page, limit, search))
}

// GetAllDonations lists every donation, optionally filtered by payment status.
func (c *Client) GetAllDonations(ctx context.Context, page, limit int, status string) Envelope[DonationList] {
	return request[DonationList](ctx, c, api.ListAllDonations(page, limit, status))
}

func (c *Client) UpdateUserStatus(ctx context.Context, id int64, active bool) Envelope[User] {
	if err := types.ValidateID("id", id); err != nil {
		return invalid[User](err)
	}
	return request[User](ctx, c, api.UpdateUserStatus(id, active))
}

func (c *Client) UpdateUserRole(ctx context.Context, id int64, role string) Envelope[User] {
	if err := types.ValidateID("id", id); err != nil {
		return invalid[User](err)
	}
	if err := types.ValidateRole(role); err != nil {
		return invalid[User](err)
	}
	return request[User](ctx, c, api.UpdateUserRole(id, role))
}

func (c *Client) DeleteUser(ctx context.Context, id int64) Envelope[Raw] {
	if err := types.ValidateID("id", id); err != nil {
		return invalid[Raw](err)
	}
	return request[Raw](ctx, c, api.DeleteUser(id))
}

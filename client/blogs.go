package client

import (
	"context"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/api"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/types"
)

// GetBlogs lists blog posts. An empty search is not sent.
func (c *Client) GetBlogs(ctx context.Context, page, limit int, search string) Envelope[BlogList] {
	return request[BlogList](ctx, c, api.ListBlogs(page, limit, search))
}

// GetBlog fetches one post by slug or numeric id.
func (c *Client) GetBlog(ctx context.Context, slugOrID string) Envelope[Blog] {
	if err := types.ValidateKey("slugOrId", slugOrID); err != nil {
		return invalid[Blog](err)
	}
	return request[Blog](ctx, c, api.GetBlog(slugOrID))
}

// CreateBlog publishes or drafts a new post. Requires an admin token.
func (c *Client) CreateBlog(ctx context.Context, req CreateBlogRequest) Envelope[Blog] {
	if err := req.Validate(); err != nil {
		return invalid[Blog](err)
	}
	return request[Blog](ctx, c, api.CreateBlog(req))
}

// UpdateBlog applies a partial update to post id.
func (c *Client) UpdateBlog(ctx context.Context, id int64, req UpdateBlogRequest) Envelope[Blog] {
	if err := types.ValidateID("id", id); err != nil {
		return invalid[Blog](err)
	}
	if err := req.Validate(); err != nil {
		return invalid[Blog](err)
	}
	return request[Blog](ctx, c, api.UpdateBlog(id, req))
}

// DeleteBlog removes post id.
func (c *Client) DeleteBlog(ctx context.Context, id int64) Envelope[Raw] {
	if err := types.ValidateID("id", id); err != nil {
		return invalid[Raw](err)
	}
	return request[Raw](ctx, c, api.DeleteBlog(id))
}

package client

import (
	"context"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/api"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/types"
)

// GetContent fetches the content block stored under key.
func (c *Client) GetContent(ctx context.Context, key string) Envelope[Content] {
	if err := types.ValidateKey("key", key); err != nil {
		return invalid[Content](err)
	}
	return request[Content](ctx, c, api.GetContent(key))
}

// GetAllContent lists every content block.
func (c *Client) GetAllContent(ctx context.Context) Envelope[[]Content] {
	return request[[]Content](ctx, c, api.ListContent())
}

// SaveContent creates or replaces a content block.
func (c *Client) SaveContent(ctx context.Context, req SaveContentRequest) Envelope[Content] {
	if err := req.Validate(); err != nil {
		return invalid[Content](err)
	}
	return request[Content](ctx, c, api.SaveContent(req))
}

func (c *Client) UpdateContentStatus(ctx context.Context, key string, active bool) Envelope[Content] {
	if err := types.ValidateKey("key", key); err != nil {
		return invalid[Content](err)
	}
	return request[Content](ctx, c, api.UpdateContentStatus(key, active))
}

func (c *Client) DeleteContent(ctx context.Context, key string) Envelope[Raw] {
	if err := types.ValidateKey("key", key); err != nil {
		return invalid[Raw](err)
	}
	return request[Raw](ctx, c, api.DeleteContent(key))
}

// BulkUpdateContent saves several blocks in one call. Every update is
// validated before anything is sent.
func (c *Client) BulkUpdateContent(ctx context.Context, updates []SaveContentRequest) Envelope[Raw] {
	for _, u := range updates {
		if err := u.Validate(); err != nil {
			return invalid[Raw](err)
		}
	}
	return request[Raw](ctx, c, api.BulkUpdateContent(updates))
}

// GetTestimonials lists published supporter testimonials.
func (c *Client) GetTestimonials(ctx context.Context) Envelope[[]Testimonial] {
	return request[[]Testimonial](ctx, c, api.Testimonials())
}

// GetEvents lists fundraising events.
func (c *Client) GetEvents(ctx context.Context) Envelope[[]Event] {
	return request[[]Event](ctx, c, api.Events())
}

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client"
)

// contentValue encodes a command line value for the content field: json
// blocks are passed through, everything else is sent as a JSON string.
func contentValue(typ, v string) (json.RawMessage, error) {
	if typ == client.ContentTypeJSON {
		if !json.Valid([]byte(v)) {
			return nil, fmt.Errorf("content is not valid JSON")
		}
		return json.RawMessage(v), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Manage editable site content",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List content blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.GetAllContent(ctx))
			})
		},
	}

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Show one content block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.GetContent(ctx, args[0]))
			})
		},
	}

	var key, title, body, typ string
	var inactive bool
	save := &cobra.Command{
		Use:   "save",
		Short: "Create or replace a content block (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := contentValue(typ, body)
			if err != nil {
				return err
			}
			active := !inactive
			req := client.SaveContentRequest{KeyName: key, Title: title, Content: raw, Type: typ, IsActive: &active}
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.SaveContent(ctx, req))
			})
		},
	}
	save.Flags().StringVar(&key, "key", "", "content key")
	save.Flags().StringVar(&title, "title", "", "title")
	save.Flags().StringVar(&body, "content", "", "content value")
	save.Flags().StringVar(&typ, "type", client.ContentTypeText, "text, html or json")
	save.Flags().BoolVar(&inactive, "inactive", false, "save the block hidden")

	var active bool
	status := &cobra.Command{
		Use:   "status <key>",
		Short: "Show or hide a content block (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.UpdateContentStatus(ctx, args[0], active))
			})
		},
	}
	status.Flags().BoolVar(&active, "active", true, "whether the block is shown")

	del := &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a content block (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.DeleteContent(ctx, args[0]))
			})
		},
	}

	cmd.AddCommand(list, get, save, status, del)
	return cmd
}

func newTestimonialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "testimonials",
		Short: "List supporter testimonials",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.GetTestimonials(ctx))
			})
		},
	}
}

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List fundraising events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.GetEvents(ctx))
			})
		},
	}
}

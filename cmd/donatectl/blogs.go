package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

func newBlogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blogs",
		Short: "List and manage blog posts",
	}
	cmd.AddCommand(newBlogsListCmd(), newBlogsGetCmd(), newBlogsCreateCmd(), newBlogsUpdateCmd(), newBlogsDeleteCmd())
	return cmd
}

func newBlogsListCmd() *cobra.Command {
	var page, limit int
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blog posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.GetBlogs(ctx, page, limit, search))
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "posts per page")
	cmd.Flags().StringVar(&search, "search", "", "search text")
	return cmd
}

func newBlogsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <slug-or-id>",
		Short: "Show one blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.GetBlog(ctx, args[0]))
			})
		},
	}
}

func newBlogsCreateCmd() *cobra.Command {
	var req client.CreateBlogRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a blog post (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.CreateBlog(ctx, req))
			})
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "post title")
	cmd.Flags().StringVar(&req.Content, "content", "", "post body")
	cmd.Flags().StringVar(&req.Excerpt, "excerpt", "", "short summary")
	cmd.Flags().StringVar(&req.FeaturedImage, "image", "", "featured image URL")
	cmd.Flags().StringSliceVar(&req.Tags, "tags", nil, "comma separated tags")
	cmd.Flags().StringVar(&req.Status, "status", "", "draft or published (default draft)")
	cmd.Flags().StringVar(&req.MetaDescription, "meta", "", "meta description")
	return cmd
}

func newBlogsUpdateCmd() *cobra.Command {
	var title, content, excerpt, image, status, meta string
	var tags []string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a blog post (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			// Only flags given on the command line are sent.
			var req client.UpdateBlogRequest
			set := func(name string, v *string, dst **string) {
				if cmd.Flags().Changed(name) {
					*dst = v
				}
			}
			set("title", &title, &req.Title)
			set("content", &content, &req.Content)
			set("excerpt", &excerpt, &req.Excerpt)
			set("image", &image, &req.FeaturedImage)
			set("status", &status, &req.Status)
			set("meta", &meta, &req.MetaDescription)
			if cmd.Flags().Changed("tags") {
				req.Tags = tags
			}
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.UpdateBlog(ctx, id, req))
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&content, "content", "", "post body")
	cmd.Flags().StringVar(&excerpt, "excerpt", "", "short summary")
	cmd.Flags().StringVar(&image, "image", "", "featured image URL")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma separated tags")
	cmd.Flags().StringVar(&status, "status", "", "draft or published")
	cmd.Flags().StringVar(&meta, "meta", "", "meta description")
	return cmd
}

func newBlogsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a blog post (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.DeleteBlog(ctx, id))
			})
		},
	}
}

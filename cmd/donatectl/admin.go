package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show admin dashboard statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.GetDashboardStats(ctx))
			})
		},
	}
}

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts (admin)",
	}

	var page, limit int
	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.GetUsers(ctx, page, limit, search))
			})
		},
	}
	list.Flags().IntVar(&page, "page", 1, "page number")
	list.Flags().IntVar(&limit, "limit", 20, "users per page")
	list.Flags().StringVar(&search, "search", "", "search text")

	var active bool
	status := &cobra.Command{
		Use:   "status <id>",
		Short: "Activate or deactivate a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.UpdateUserStatus(ctx, id, active))
			})
		},
	}
	status.Flags().BoolVar(&active, "active", true, "whether the account is active")

	role := &cobra.Command{
		Use:   "role <id> <user|admin>",
		Short: "Change a user's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.UpdateUserRole(ctx, id, args[1]))
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.DeleteUser(ctx, id))
			})
		},
	}

	cmd.AddCommand(list, status, role, del)
	return cmd
}

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.Login(ctx, client.LoginRequest{Email: email, Password: password}))
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var req client.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.Register(ctx, req))
			})
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&req.Country, "country", "", "country")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.Logout())
			})
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.GetCurrentUser(ctx))
			})
		},
	}
}

func newProfileCmd() *cobra.Command {
	var firstName, lastName, phone, country string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the signed-in user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req client.ProfileUpdate
			set := func(name string, v *string, dst **string) {
				if cmd.Flags().Changed(name) {
					*dst = v
				}
			}
			set("first-name", &firstName, &req.FirstName)
			set("last-name", &lastName, &req.LastName)
			set("phone", &phone, &req.Phone)
			set("country", &country, &req.Country)
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.UpdateProfile(ctx, req))
			})
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number (pass \"\" to clear)")
	cmd.Flags().StringVar(&country, "country", "", "country (pass \"\" to clear)")
	return cmd
}

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client"
)

func newDonateCmd() *cobra.Command {
	var req client.CreateDonationRequest

	cmd := &cobra.Command{
		Use:   "donate",
		Short: "Record a donation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.CreateDonation(ctx, req))
			})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&req.Amount, "amount", 0, "amount to give")
	f.StringVar(&req.Currency, "currency", "USD", "ISO currency code")
	f.StringVar(&req.Frequency, "frequency", client.FrequencyOneTime, "one-time or monthly")
	f.StringVar(&req.PaymentMethod, "payment-method", client.PaymentStripe, "stripe, paypal or flutterwave")
	f.StringVar(&req.DonorName, "name", "", "donor name")
	f.StringVar(&req.DonorEmail, "email", "", "donor email")
	f.StringVar(&req.DonorPhone, "phone", "", "donor phone")
	f.StringVar(&req.DonorAddress, "address", "", "donor street address")
	f.StringVar(&req.DonorCity, "city", "", "donor city")
	f.StringVar(&req.DonorZip, "zip", "", "donor postal code")
	f.StringVar(&req.DonorCountry, "country", "", "donor country")
	f.BoolVar(&req.IsAnonymous, "anonymous", false, "hide the donor's name publicly")
	return cmd
}

func newDonationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "donations",
		Short: "Inspect donations",
	}

	var page, limit int
	mine := &cobra.Command{
		Use:   "mine",
		Short: "List your own donations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.GetUserDonations(ctx, page, limit))
			})
		},
	}
	mine.Flags().IntVar(&page, "page", 1, "page number")
	mine.Flags().IntVar(&limit, "limit", 10, "donations per page")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show donation statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.GetDonationStats(ctx))
			})
		},
	}

	var allPage, allLimit int
	var status string
	all := &cobra.Command{
		Use:   "all",
		Short: "List every donation (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.GetAllDonations(ctx, allPage, allLimit, status))
			})
		},
	}
	all.Flags().IntVar(&allPage, "page", 1, "page number")
	all.Flags().IntVar(&allLimit, "limit", 20, "donations per page")
	all.Flags().StringVar(&status, "status", "", "filter by payment status")

	cmd.AddCommand(mine, stats, all)
	return cmd
}

func newPaymentMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payment-methods <country>",
		Short: "List payment methods available in a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) error {
				return emit(cmd, c.GetPaymentMethods(ctx, args[0]))
			})
		},
	}
}

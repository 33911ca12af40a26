package main

import (
	"github.com/goliatone/go-commerce-vtex/query"
	"github.com/spf13/cobra"
)

func newSellerCommand(options *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seller",
		Short: "Seller lookups",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Fetch one seller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			facade, err := options.connect()
			if err != nil {
				return err
			}
			seller, err := facade.Queries().FindSeller.Query(cmd.Context(), query.FindSellerMessage{SellerID: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), seller)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "search",
		Aliases: []string{"ls"},
		Short:   "List sellers",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			facade, err := options.connect()
			if err != nil {
				return err
			}
			sellers, err := facade.Queries().SearchSellers.Query(cmd.Context(), query.SearchSellersMessage{})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), sellers)
		},
	})
	return cmd
}

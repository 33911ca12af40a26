package main

import (
	"github.com/goliatone/go-commerce-vtex/core"
	"github.com/goliatone/go-commerce-vtex/query"
	"github.com/spf13/cobra"
)

// newRequestCommand prints request descriptors. Nothing is sent upstream.
func newRequestCommand(options *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Print the deferred request descriptor for a record",
	}
	for _, resource := range []string{core.DescriptorOptionSeller, core.DescriptorOptionCluster} {
		cmd.AddCommand(&cobra.Command{
			Use:   resource + " <id>",
			Short: "Descriptor for one " + resource,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				facade, err := options.connect()
				if err != nil {
					return err
				}
				descriptor, err := facade.Queries().RequestObject.Query(cmd.Context(), query.RequestObjectMessage{
					Resource: resource,
					ID:       args[0],
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), descriptor)
			},
		})
	}
	return cmd
}

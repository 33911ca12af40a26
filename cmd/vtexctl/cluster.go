package main

import (
	"github.com/goliatone/go-commerce-vtex/query"
	"github.com/spf13/cobra"
)

func newClusterCommand(options *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Cluster lookups",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get <name>",
		Short: "Fetch one cluster by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			facade, err := options.connect()
			if err != nil {
				return err
			}
			cluster, err := facade.Queries().FindCluster.Query(cmd.Context(), query.FindClusterMessage{ClusterID: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), cluster)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "search",
		Aliases: []string{"ls"},
		Short:   "List clusters",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			facade, err := options.connect()
			if err != nil {
				return err
			}
			clusters, err := facade.Queries().SearchClusters.Query(cmd.Context(), query.SearchClustersMessage{})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), clusters)
		},
	})
	return cmd
}

package commands

import "github.com/spf13/cobra"

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "query node status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/status")
		},
	}
}

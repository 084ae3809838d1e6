package commands

import "github.com/spf13/cobra"

func peersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peers",
		Short: "list known peers, or register a new one",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/peers")
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "register <peer-url>",
		Short: "register a peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/register_peer", map[string]any{"peer_url": args[0]})
		},
	})

	return cmd
}

package commands

import "github.com/spf13/cobra"

func mineCmd() *cobra.Command {
	var minerAddress string

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "trigger a mining round",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/mine", map[string]any{
				"miner_address": minerAddress,
			})
		},
	}

	cmd.Flags().StringVar(&minerAddress, "miner", "", "address credited with the mining reward")
	cmd.MarkFlagRequired("miner")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func chainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chain <host>",
		Short: "dump a node's full chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := fetchJSON(args[0], "/blockchain")
			if err != nil {
				return err
			}

			for _, raw := range body["chain"].([]any) {
				block := raw.(map[string]any)
				fmt.Printf("#%v hash=%v prev=%v nonce=%v txs=%d\n",
					block["index"], block["hash"], block["previous_hash"], block["nonce"],
					len(block["transactions"].([]any)))
			}

			return nil
		},
	}
}

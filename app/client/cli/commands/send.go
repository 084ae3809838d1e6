package commands

import "github.com/spf13/cobra"

func sendCmd() *cobra.Command {
	var sender, receiver string
	var amount float64

	cmd := &cobra.Command{
		Use:   "send",
		Short: "submit a transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/transaction", map[string]any{
				"sender":   sender,
				"receiver": receiver,
				"amount":   amount,
			})
		},
	}

	cmd.Flags().StringVar(&sender, "from", "", "sender address")
	cmd.Flags().StringVar(&receiver, "to", "", "receiver address")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to send")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("amount")

	return cmd
}

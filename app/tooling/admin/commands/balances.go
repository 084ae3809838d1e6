package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/blockchain"
	"github.com/spf13/cobra"
)

func balancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balances <host>",
		Short: "derive every address's balance from a node's chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printBalances(args[0])
		},
	}
}

func printBalances(host string) error {
	resp, err := http.Get(strings.TrimRight(host, "/") + "/blockchain")
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var snap blockchain.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	balances := blockchain.BalancesFromChain(snap.Chain)

	addrs := make([]string, 0, len(balances))
	for addr := range balances {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)

	fmt.Printf("chain length: %d\n\n", len(snap.Chain))
	for _, addr := range addrs {
		fmt.Printf("%-24s %v\n", addr, balances[addr])
	}

	return nil
}

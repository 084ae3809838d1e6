// Package commands implements the admin CLI's read-only queries
// against a node.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

// RootCmd constructs the cobra root command with every subcommand
// attached.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "admin",
		Short: "read-only administrative inspection of a blockchain node",
	}

	root.AddCommand(balancesCmd())
	root.AddCommand(chainCmd())

	return root
}

func fetchJSON(host, path string) (map[string]any, error) {
	resp, err := http.Get(strings.TrimRight(host, "/") + path)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return body, nil
}

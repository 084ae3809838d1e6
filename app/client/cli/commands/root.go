// Package commands implements the client CLI's subcommands, each a
// thin HTTP client against a running node's public API.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

var host string

// RootCmd constructs the cobra root command with every subcommand
// attached.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "client",
		Short: "a thin REST client for a blockchain node",
	}

	root.PersistentFlags().StringVar(&host, "host", "http://localhost:5000", "node address")

	root.AddCommand(balanceCmd())
	root.AddCommand(sendCmd())
	root.AddCommand(mineCmd())
	root.AddCommand(peersCmd())
	root.AddCommand(statusCmd())

	return root
}

// getJSON issues a GET request against host+path and prints the
// response body pretty-printed.
func getJSON(path string) error {
	resp, err := http.Get(strings.TrimRight(host, "/") + path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

// postJSON issues a POST request with a JSON-encoded body against
// host+path and prints the response body pretty-printed.
func postJSON(path string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := http.Post(strings.TrimRight(host, "/")+path, "application/json", strings.NewReader(string(data)))
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var pretty any
	if err := json.Unmarshal(raw, &pretty); err != nil {
		fmt.Println(string(raw))
		return nil
	}

	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		fmt.Println(string(raw))
		return nil
	}

	fmt.Println(string(out))
	return nil
}

// This program is a thin REST client for a running blockchain node.
package main

import (
	"fmt"
	"os"

	"github.com/sakthi-1918/P2P-Distributed-blockchain/app/client/cli/commands"
)

func main() {
	if err := commands.RootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

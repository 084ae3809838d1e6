// This program performs read-only administrative inspection of a
// running blockchain node: the same requests a dashboard would make,
// for operators without a browser.
package main

import (
	"fmt"
	"os"

	"github.com/sakthi-1918/P2P-Distributed-blockchain/app/tooling/admin/commands"
)

func main() {
	if err := commands.RootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

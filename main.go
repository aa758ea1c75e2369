package main

import (
	"os"

	"github.com/addrbook/addrbook-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the jet-merchant server and CLI.
package main

import (
	"os"

	"github.com/donaldgifford/jet-merchant/cmd/jet-merchant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

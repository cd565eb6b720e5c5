// Package main is the entry point for the jetctl CLI client.
package main

import (
	"github.com/donaldgifford/jet-merchant/cmd/jetctl/cmd"
)

func main() {
	cmd.Execute()
}

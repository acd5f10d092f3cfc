// Package main is the entry point for the pcbuild CLI.
package main

import (
	"os"

	"pcbuild/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

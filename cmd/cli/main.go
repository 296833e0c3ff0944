// Package main is the entry point for the practice-pricing CLI.
package main

import (
	"os"

	"practice-pricing/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

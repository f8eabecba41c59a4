// Package main is the entry point for the trove CLI tool.
package main

import (
	"os"

	"github.com/avigne/trove/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

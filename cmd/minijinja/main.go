// Package main provides the CLI entry point for the minijinja
// expression tool.
package main

import (
	"os"

	"github.com/wrike/minijinja/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

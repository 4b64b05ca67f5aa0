// Package main is the entry point for the tododeck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/tododeck/tododeck/internal/app"
	"github.com/tododeck/tododeck/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Create dependency injection container. Empty dirs resolve to the
	// per-user XDG defaults.
	container, err := app.New("", "")
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

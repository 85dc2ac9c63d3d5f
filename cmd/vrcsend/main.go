// Package main is the entry point for the vrcsend TUI and CLI.
package main

import (
	"os"

	"github.com/vrcsend/vrcsend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

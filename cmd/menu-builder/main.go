// Package main provides the menu-builder CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/yingyang-dd/AI-menu-building-competitation/cmd/menu-builder/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

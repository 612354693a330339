package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stickhero/internal/registry"
)

var inputsCmd = &cobra.Command{
	Use:   "inputs",
	Short: "List all available input sources",
	Long:  `Shows the input sources that can stretch the stick.`,
	Args:  cobra.NoArgs,
	Run:   runInputs,
}

func runInputs(_ *cobra.Command, _ []string) {
	sources := registry.List()

	if len(sources) == 0 {
		fmt.Println("No input sources available.")
		return
	}

	fmt.Println("Available input sources:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sources {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range sources {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'stickhero play --input <id>' to use one.")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockfall/blockfall/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available modes",
	Run: func(cmd *cobra.Command, args []string) {
		modes := registry.List()
		if len(modes) == 0 {
			fmt.Println("No modes registered.")
			return
		}

		fmt.Println("Available modes:")
		for _, m := range modes {
			fmt.Printf("  %-16s %s\n", m.ID, m.Title)
		}
		fmt.Println("\nRun 'blockfall play <id>' to start playing.")
	},
}

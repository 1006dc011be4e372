package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/universal-elevators/internal/registry"
)

var controllersCmd = &cobra.Command{
	Use:   "controllers",
	Short: "List elevator controllers",
	Long:  `Shows every elevator controller that can be picked with --controller.`,
	Args:  cobra.NoArgs,
	Run:   runControllers,
}

func runControllers(_ *cobra.Command, _ []string) {
	infos := registry.List()
	if len(infos) == 0 {
		fmt.Println("No controllers available.")
		return
	}

	idColor := color.New(color.FgGreen, color.Bold)
	color.New(color.FgCyan, color.Bold).Println("Available controllers:")
	fmt.Println()

	maxIDLen := 2
	for _, c := range infos {
		maxIDLen = max(maxIDLen, len(c.ID))
	}
	for _, c := range infos {
		idColor.Printf("  %-*s", maxIDLen, c.ID)
		fmt.Printf("  %s\n", c.Title)
	}

	fmt.Println()
	fmt.Println("Run 'elevators play --controller <id>' to use one.")
}

package main

import (
	"fmt"

	"dragd/cmd/dragd/cli"
	"dragd/internal/config"

	"github.com/spf13/cobra"
)

// NewThemesCmd creates the themes command
func NewThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available color themes",
		Run: func(cmd *cobra.Command, args []string) {
			cli.PrintHeader("Available themes")
			for _, name := range config.ListThemes() {
				marker := "  "
				if name == cfg.Theme.Name {
					marker = "✓ "
				}
				theme := config.GetTheme(name)
				fmt.Printf("%s%-12s indicator %s  label %s\n", marker, name, theme["indicator"], theme["label"])
			}
		},
	}
}

package main

import (
	"fmt"
	"os"

	"dragd/internal/tui"

	"github.com/spf13/cobra"
)

// NewDemoCmd creates the terminal front end command
func NewDemoCmd() *cobra.Command {
	var itemsPath string
	var watchItems bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the drag and drop list in the terminal",
		Long:  `Run the interactive list in the terminal: drag items to reorder, drop payloads in, delete selections.`,
		Run: func(cmd *cobra.Command, args []string) {
			if itemsPath != "" {
				cfg.Items.Path = itemsPath
			}
			if cmd.Flags().Changed("watch") {
				cfg.Items.Watch = watchItems
			}
			if err := tui.Run(cfg); err != nil {
				fmt.Printf("Error running demo: %v\n", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVarP(&itemsPath, "items", "i", "", "Items file (overrides config)")
	cmd.Flags().BoolVarP(&watchItems, "watch", "w", false, "Reload when the items file changes")

	return cmd
}

package main

import (
	"fmt"
	"os"

	"dragd/internal/gui"

	"github.com/spf13/cobra"
)

// NewGuiCmd creates the GUI command for the CLI
func NewGuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical user interface",
		Long:  `Launch the windowed version of dragd for pointer-driven drag and drop.`,
		Run: func(cmd *cobra.Command, args []string) {
			if !gui.IsGUIAvailable() {
				fmt.Println("This build was compiled without GUI support.")
				os.Exit(1)
			}
			fmt.Println("Launching GUI interface...")
			if err := gui.StartGUI(cfg); err != nil {
				fmt.Printf("Error launching GUI: %v\n", err)
				os.Exit(1)
			}
		},
	}
}

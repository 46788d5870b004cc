//go:build nogui
// +build nogui

package gui

import (
	"fmt"

	"dragd/internal/config"
)

// StartGUI is a stub implementation for builds with GUI disabled
func StartGUI(cfg *config.Config) error {
	fmt.Println("GUI is disabled in this build. Please use the terminal interface.")
	return fmt.Errorf("GUI not available in this build")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}

//go:build !nogui
// +build !nogui

package gui

import (
	"dragd/internal/config"
)

// Interface defines the contract for GUI operations
type Interface interface {
	Run()
	ShowError(title string, err error)
	ShowInfo(message string)
}

// Factory creates GUI instances
type Factory struct {
	config *config.Config
}

// NewFactory creates a new GUI factory
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{config: cfg}
}

// Create returns a new GUI instance
func (f *Factory) Create() (Interface, error) {
	return NewApp(f.config)
}

// StartGUI builds the application and runs it until the window closes.
func StartGUI(cfg *config.Config) error {
	a, err := NewApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	a.Run()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}

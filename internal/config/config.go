// Package config loads, validates and saves the application configuration:
// interaction thresholds, the demo drop box's accept patterns, the items
// file backing the demo list, logging, and named color themes shared by the
// terminal and GUI front ends.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"dragd/internal/element"
	"dragd/pkg/types"
)

// Config represents the application configuration structure.
type Config struct {
	Interaction struct {
		DragThreshold         float32 `yaml:"drag_threshold"`          // Per-axis displacement before a release commits a move (GUI units)
		TerminalDragThreshold float32 `yaml:"terminal_drag_threshold"` // Same threshold in terminal cells
	} `yaml:"interaction"`
	Accept struct {
		Patterns []string `yaml:"patterns"` // Payload-name patterns the drop box accepts
	} `yaml:"accept"`
	Items struct {
		Path  string `yaml:"path"`  // Items file backing the demo list
		Watch bool   `yaml:"watch"` // Reload the list when the items file changes
	} `yaml:"items"`
	Log struct {
		File  string `yaml:"file"`  // Log file path (empty = stderr)
		Debug bool   `yaml:"debug"` // Enable debug-level logging
	} `yaml:"log"`
	Theme struct {
		Name            string `yaml:"name"`             // Theme name (default, dark, light, etc.)
		Indicator       string `yaml:"indicator"`        // Selection highlight and drag image color
		IndicatorHilite string `yaml:"indicator_hilite"` // Drop feedback and insertion guide color
		Label           string `yaml:"label"`            // Item text color
		InactiveLabel   string `yaml:"inactive_label"`   // Disabled item text color
		Border          string `yaml:"border"`           // Frame color for the front ends
		Status          string `yaml:"status"`           // Status line accent color
	} `yaml:"theme"`
}

// LoadConfig loads configuration from the default location
// (~/.config/dragd/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "dragd", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	// Try to read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Interaction.DragThreshold > 0 {
		cfg.Interaction.DragThreshold = tempCfg.Interaction.DragThreshold
	}
	if tempCfg.Interaction.TerminalDragThreshold > 0 {
		cfg.Interaction.TerminalDragThreshold = tempCfg.Interaction.TerminalDragThreshold
	}
	if len(tempCfg.Accept.Patterns) > 0 {
		cfg.Accept.Patterns = tempCfg.Accept.Patterns
	}
	if tempCfg.Items.Path != "" {
		cfg.Items.Path = tempCfg.Items.Path
	}
	cfg.Items.Watch = tempCfg.Items.Watch

	if tempCfg.Log.File != "" {
		cfg.Log.File = tempCfg.Log.File
	}
	cfg.Log.Debug = tempCfg.Log.Debug

	if tempCfg.Theme.Name != "" {
		cfg.ApplyTheme(tempCfg.Theme.Name)
	}
	// Explicit colors override the named theme
	if tempCfg.Theme.Indicator != "" {
		cfg.Theme.Indicator = tempCfg.Theme.Indicator
	}
	if tempCfg.Theme.IndicatorHilite != "" {
		cfg.Theme.IndicatorHilite = tempCfg.Theme.IndicatorHilite
	}
	if tempCfg.Theme.Label != "" {
		cfg.Theme.Label = tempCfg.Theme.Label
	}
	if tempCfg.Theme.InactiveLabel != "" {
		cfg.Theme.InactiveLabel = tempCfg.Theme.InactiveLabel
	}
	if tempCfg.Theme.Border != "" {
		cfg.Theme.Border = tempCfg.Theme.Border
	}
	if tempCfg.Theme.Status != "" {
		cfg.Theme.Status = tempCfg.Theme.Status
	}

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	// A pixel-scale threshold for the GUI, a cell-scale one for the terminal
	cfg.Interaction.DragThreshold = 10
	cfg.Interaction.TerminalDragThreshold = 2

	// Accept plain text and file lists by default
	cfg.Accept.Patterns = []string{"text/*"}

	cfg.Items.Path = defaultItemsPath()
	cfg.Items.Watch = false

	cfg.Log.File = ""
	cfg.Log.Debug = false

	cfg.ApplyTheme("default")

	return cfg
}

func defaultItemsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "items.yaml"
	}
	return filepath.Join(home, ".config", "dragd", "items.yaml")
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal the config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write the data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if c.Interaction.DragThreshold <= 0 {
		return fmt.Errorf("drag threshold must be > 0")
	}
	if c.Interaction.TerminalDragThreshold <= 0 {
		return fmt.Errorf("terminal drag threshold must be > 0")
	}

	// Validate accept patterns
	for i, pattern := range c.Accept.Patterns {
		if pattern == "" {
			return fmt.Errorf("accept pattern %d: pattern is required", i)
		}
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("accept pattern %d: %w", i, err)
		}
	}

	// Validate theme colors
	colors := map[string]string{
		"indicator":        c.Theme.Indicator,
		"indicator_hilite": c.Theme.IndicatorHilite,
		"label":            c.Theme.Label,
		"inactive_label":   c.Theme.InactiveLabel,
		"border":           c.Theme.Border,
		"status":           c.Theme.Status,
	}
	for name, value := range colors {
		if value == "" {
			continue
		}
		if _, err := types.ParseHex(value); err != nil {
			return fmt.Errorf("theme color %s: %w", name, err)
		}
	}

	if c.Items.Watch && c.Items.Path == "" {
		return fmt.Errorf("items watch enabled but no items path set")
	}

	return nil
}

// EngineTheme converts the configured colors into the element theme the
// engine draws with. Unset colors keep the stock palette.
func (c *Config) EngineTheme() element.Theme {
	th := element.DefaultTheme()
	if col, err := types.ParseHex(c.Theme.Indicator); err == nil {
		th.Indicator = col
	}
	if col, err := types.ParseHex(c.Theme.IndicatorHilite); err == nil {
		th.IndicatorHilite = col
	}
	if col, err := types.ParseHex(c.Theme.Label); err == nil {
		th.Label = col
	}
	if col, err := types.ParseHex(c.Theme.InactiveLabel); err == nil {
		th.InactiveLabel = col
	}
	return th
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Interaction.DragThreshold = 5
	cfg.Interaction.TerminalDragThreshold = 1
	cfg.Accept.Patterns = []string{"text/*", "test/item"}
	cfg.Items.Path = "testdata/items.yaml"
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"indicator":        "#007fff", // Azure
			"indicator_hilite": "#00beff", // Bright azure
			"label":            "#dcdcdc", // Light grey
			"inactive_label":   "#7f7f7f", // Mid grey
			"border":           "#5f5fd7", // Violet
			"status":           "#ff79c6", // Pink
		},
		"dark": {
			"indicator":        "#264f78", // Slate blue
			"indicator_hilite": "#3794ff", // Electric blue
			"label":            "#cccccc", // Soft white
			"inactive_label":   "#6e6e6e", // Dim grey
			"border":           "#3c3c3c", // Charcoal
			"status":           "#4ec9b0", // Teal
		},
		"light": {
			"indicator":        "#add6ff", // Pale blue
			"indicator_hilite": "#0066bf", // Deep blue
			"label":            "#1e1e1e", // Near black
			"inactive_label":   "#a0a0a0", // Silver
			"border":           "#c8c8c8", // Light grey
			"status":           "#795e26", // Ochre
		},
		"monochrome": {
			"indicator":        "#666666", // Medium grey
			"indicator_hilite": "#ffffff", // White
			"label":            "#d0d0d0", // Light grey
			"inactive_label":   "#606060", // Dark grey
			"border":           "#808080", // Grey
			"status":           "#ffffff", // White
		},
		"ocean": {
			"indicator":        "#005f87", // Teal
			"indicator_hilite": "#00d7ff", // Cyan
			"label":            "#e4f1f6", // Foam
			"inactive_label":   "#5f8787", // Sea grey
			"border":           "#0087af", // Blue-green
			"status":           "#5fffd7", // Aqua
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Indicator = theme["indicator"]
	c.Theme.IndicatorHilite = theme["indicator_hilite"]
	c.Theme.Label = theme["label"]
	c.Theme.InactiveLabel = theme["inactive_label"]
	c.Theme.Border = theme["border"]
	c.Theme.Status = theme["status"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome", "ocean"}
}

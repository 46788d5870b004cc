// Package items persists the demo list's content as a small YAML file.
package items

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Item is one entry of the demo list.
type Item struct {
	Title    string `yaml:"title"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// document is the on-disk shape.
type document struct {
	Items []Item `yaml:"items"`
}

// Default returns the stock demo items used when no items file exists.
func Default() []Item {
	return []Item{
		{Title: "Apple"},
		{Title: "Banana"},
		{Title: "Cherry"},
		{Title: "Date"},
		{Title: "Elderberry"},
		{Title: "Fig", Disabled: true},
		{Title: "Grape"},
	}
}

// Load reads the items file at path. A missing file yields the default
// items rather than an error, matching how configuration loading behaves.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("error reading items file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing items file: %w", err)
	}
	if len(doc.Items) == 0 {
		return Default(), nil
	}
	return doc.Items, nil
}

// Save writes the items to path, creating parent directories if needed.
func Save(path string, list []Item) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create items directory: %w", err)
	}

	data, err := yaml.Marshal(document{Items: list})
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write items file: %w", err)
	}

	return nil
}

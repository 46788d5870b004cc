package main

import (
	"fmt"
	"os"
	"path/filepath"

	"dragd/cmd/dragd/cli"
	"dragd/internal/config"
	"dragd/internal/items"

	"github.com/spf13/cobra"
)

// NewSetupCmd creates the setup command
func NewSetupCmd() *cobra.Command {
	var (
		themeName  string
		itemsPath  string
		watchItems bool
		logFile    string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Write a configuration file",
		Long:  `Write ~/.config/dragd/config.yaml (or the --config path) with the given settings, and seed the item list if none exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				path = filepath.Join(home, ".config", "dragd", "config.yaml")
			}

			if _, err := os.Stat(path); err == nil && !force {
				cli.PrintWarning(fmt.Sprintf("Config already exists at %s (use --force to overwrite)", path))
				return nil
			}

			if themeName != "" {
				cfg.ApplyTheme(themeName)
			}
			if itemsPath != "" {
				cfg.Items.Path = itemsPath
			}
			if cmd.Flags().Changed("watch") {
				cfg.Items.Watch = watchItems
			}
			if logFile != "" {
				cfg.Log.File = logFile
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.SaveConfig(cfg, path); err != nil {
				return err
			}
			cli.PrintSuccess(fmt.Sprintf("Wrote %s", path))

			if _, err := os.Stat(cfg.Items.Path); os.IsNotExist(err) {
				if err := items.Save(cfg.Items.Path, items.Default()); err != nil {
					return err
				}
				cli.PrintSuccess(fmt.Sprintf("Seeded %s", cfg.Items.Path))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&themeName, "theme", "t", "", "Named color theme (see 'dragd themes')")
	cmd.Flags().StringVarP(&itemsPath, "items", "i", "", "Items file path")
	cmd.Flags().BoolVarP(&watchItems, "watch", "w", false, "Reload the list when the items file changes")
	cmd.Flags().StringVarP(&logFile, "log-file", "l", "", "Log file path")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config")

	return cmd
}

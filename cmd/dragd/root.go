package main

import (
	"fmt"

	"dragd/internal/config"
	"dragd/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dragd",
		Short: "A drag and drop playground for ordered lists",
		Long: `
	'########::'########:::::'###:::::'######::::'########::
	 ##.... ##: ##.... ##:::'## ##:::'##... ##::: ##.... ##:
	 ##:::: ##: ##:::: ##::'##:. ##:: ##:::..:::: ##:::: ##:
	 ##:::: ##: ########::'##:::. ##: ##::'####:: ##:::: ##:
	 ##:::: ##: ##.. ##::: #########: ##::: ##::: ##:::: ##:
	 ##:::: ##: ##::. ##:: ##.... ##: ##::: ##::: ##:::: ##:
	 ########:: ##:::. ##: ##:::: ##:. ######:::: ########::
	........:::..:::::..::..:::::..:::......:::::........:::

Dragd hosts a reorderable item list you can drag, drop and edit,
in your terminal or in a window.
		`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}
			if configErr != nil {
				fmt.Printf("⚠️ Warning: %v\n", configErr)
				fmt.Println("💡 Using default settings. Run 'dragd setup' to configure.")
				cfg = config.New()
			}

			if debug {
				cfg.Log.Debug = true
			}
			log.SetDebug(cfg.Log.Debug)
			if cfg.Log.File != "" {
				if err := log.ToFile(cfg.Log.File); err != nil {
					fmt.Printf("⚠️ Warning: could not open log file: %v\n", err)
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/dragd/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(NewDemoCmd())
	rootCmd.AddCommand(NewGuiCmd())
	rootCmd.AddCommand(NewItemsCmd())
	rootCmd.AddCommand(NewThemesCmd())
	rootCmd.AddCommand(NewSetupCmd())

	return rootCmd
}

package main

import (
	"fmt"
	"strconv"

	"dragd/cmd/dragd/cli"
	"dragd/internal/items"

	"github.com/spf13/cobra"
)

// NewItemsCmd creates the items command
func NewItemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage the demo item list",
		Long:  `View and edit the item list the demo front ends display.`,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to listing items when no subcommand is provided
			listItems()
		},
	}

	cmd.AddCommand(newItemsListCmd())
	cmd.AddCommand(newItemsAddCmd())
	cmd.AddCommand(newItemsRemoveCmd())
	cmd.AddCommand(newItemsResetCmd())

	return cmd
}

func listItems() {
	content, err := items.Load(cfg.Items.Path)
	if err != nil {
		cli.PrintError(fmt.Sprintf("Could not load items: %v", err))
		return
	}

	cli.PrintHeader(fmt.Sprintf("Items (%s)", cfg.Items.Path))
	for i, it := range content {
		note := ""
		if it.Disabled {
			note = " (disabled)"
		}
		fmt.Printf("  %2d. %s%s\n", i, it.Title, note)
	}
}

// newItemsListCmd creates the 'items list' command
func newItemsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the items",
		Run: func(cmd *cobra.Command, args []string) {
			listItems()
		},
	}
}

// newItemsAddCmd creates the 'items add' command
func newItemsAddCmd() *cobra.Command {
	var disabled bool
	var at int

	cmd := &cobra.Command{
		Use:   "add <title>...",
		Short: "Add items to the list",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			content, err := items.Load(cfg.Items.Path)
			if err != nil {
				cli.PrintError(fmt.Sprintf("Could not load items: %v", err))
				return
			}

			added := make([]items.Item, 0, len(args))
			for _, title := range args {
				added = append(added, items.Item{Title: title, Disabled: disabled})
			}

			if at < 0 || at > len(content) {
				at = len(content)
			}
			content = append(content[:at], append(added, content[at:]...)...)

			if err := items.Save(cfg.Items.Path, content); err != nil {
				cli.PrintError(fmt.Sprintf("Could not save items: %v", err))
				return
			}
			cli.PrintSuccess(fmt.Sprintf("Added %d item(s)", len(added)))
		},
	}

	cmd.Flags().BoolVarP(&disabled, "disabled", "d", false, "Add the items disabled")
	cmd.Flags().IntVarP(&at, "at", "a", -1, "Insertion index (default appends)")

	return cmd
}

// newItemsRemoveCmd creates the 'items remove' command
func newItemsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>...",
		Short: "Remove items by index",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			content, err := items.Load(cfg.Items.Path)
			if err != nil {
				cli.PrintError(fmt.Sprintf("Could not load items: %v", err))
				return
			}

			doomed := make(map[int]bool, len(args))
			for _, arg := range args {
				i, err := strconv.Atoi(arg)
				if err != nil || i < 0 || i >= len(content) {
					cli.PrintWarning(fmt.Sprintf("Skipping invalid index %q", arg))
					continue
				}
				doomed[i] = true
			}
			if len(doomed) == 0 {
				cli.PrintWarning("Nothing to remove")
				return
			}

			kept := content[:0]
			for i, it := range content {
				if !doomed[i] {
					kept = append(kept, it)
				}
			}

			if err := items.Save(cfg.Items.Path, kept); err != nil {
				cli.PrintError(fmt.Sprintf("Could not save items: %v", err))
				return
			}
			cli.PrintSuccess(fmt.Sprintf("Removed %d item(s)", len(doomed)))
		},
	}
}

// newItemsResetCmd creates the 'items reset' command
func newItemsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default item list",
		Run: func(cmd *cobra.Command, args []string) {
			if err := items.Save(cfg.Items.Path, items.Default()); err != nil {
				cli.PrintError(fmt.Sprintf("Could not save items: %v", err))
				return
			}
			cli.PrintSuccess("Item list reset to defaults")
		},
	}
}

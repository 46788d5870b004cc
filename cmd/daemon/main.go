package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dragd/internal/config"
	"dragd/internal/items"
	"dragd/internal/log"
	"dragd/internal/watch"
)

// A headless companion to the front ends: it follows the item store and
// reports every modification, for sessions where the list is edited by
// another process.
func main() {
	fmt.Println("🚀 Starting dragd store watcher...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("⚠️ Warning: %v\n", err)
		fmt.Println("💡 Using default settings. Run 'dragd setup' to configure.")
		cfg = config.New()
	}
	log.SetDebug(cfg.Log.Debug)
	if cfg.Log.File != "" {
		if err := log.ToFile(cfg.Log.File); err != nil {
			fmt.Printf("⚠️ Warning: could not open log file: %v\n", err)
		}
	}

	// Check if watching is enabled
	if !cfg.Items.Watch {
		fmt.Println("❌ Watching is not enabled in configuration.")
		fmt.Println("💡 Run 'dragd setup --watch' to enable it.")
		os.Exit(1)
	}

	w, err := watch.New(cfg.Items.Path)
	if err != nil {
		fmt.Printf("❌ Cannot watch %s: %v\n", cfg.Items.Path, err)
		os.Exit(1)
	}
	if err := w.Start(); err != nil {
		fmt.Printf("❌ Cannot start watching: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("👀 Watching %s (ctrl+c to stop)\n", w.Path())

	// Setup signal catching for clean shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case mod, ok := <-w.Channel():
			if !ok {
				return
			}
			content, err := items.Load(w.Path())
			if err != nil {
				log.Errorf("reloading items: %v", err)
				continue
			}
			fmt.Printf("%s %s: %d item(s)\n",
				mod.Timestamp.Format("15:04:05"), mod.Op, len(content))
		case <-sigChan:
			fmt.Println("\n🛑 Stopping...")
			w.Stop()
			fmt.Println("✅ Watcher stopped")
			return
		}
	}
}

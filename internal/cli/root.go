// Package cli implements the memory-game server commands.
package cli

import (
	"github.com/jvs-dev/memory-game-guadalupe/internal/catalog"
	"github.com/jvs-dev/memory-game-guadalupe/internal/config"

	"github.com/spf13/cobra"
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "memory-game",
	Short: "Memory matching game server",
	Long: "Serves the browser memory-matching game, drives game sessions over " +
		"WebSocket and manages the card catalog (SQLite by default, Postgres " +
		"for hosted installs).",
}

func init() {
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(seedCmd)
	RootCmd.AddCommand(cardsCmd)
}

// openStore loads the configuration and opens the configured catalog
// backend. The caller owns the store and must close it.
func openStore() (catalog.Store, config.Config, error) {
	cfg := config.Load()
	store, err := catalog.Open(cfg.CatalogBackend, cfg.SQLitePath, cfg.PostgresDSN)
	if err != nil {
		return nil, cfg, err
	}
	return store, cfg, nil
}

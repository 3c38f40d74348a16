package cli

import (
	"log"

	"github.com/jvs-dev/memory-game-guadalupe/internal/catalog"
	"github.com/jvs-dev/memory-game-guadalupe/internal/game"
	"github.com/jvs-dev/memory-game-guadalupe/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the game server",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		hub := server.NewHub(catalog.NewAccessor(store), game.NewWallScheduler())
		go hub.Run()

		router := server.NewRouter(store, cfg.CatalogBackend, cfg.StaticDir, hub)
		log.Printf("Starting memory game server on %s (catalog: %s)", cfg.HTTPAddr, cfg.CatalogBackend)
		return router.Run(cfg.HTTPAddr)
	},
}

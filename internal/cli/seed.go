package cli

import (
	"fmt"

	"github.com/jvs-dev/memory-game-guadalupe/internal/catalog"

	"github.com/spf13/cobra"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the stock card set into the catalog",
	Long: "Loads the starter card set so a fresh install can play immediately. " +
		"A catalog that already has cards is left untouched unless --force is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := catalog.Seed(cmd.Context(), store, seedForce)
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Println("Catalog already has cards; nothing seeded (use --force to overwrite)")
			return nil
		}
		fmt.Printf("Seeded %d cards\n", n)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "seed even when the catalog already has cards")
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jvs-dev/memory-game-guadalupe/internal/catalog"

	"github.com/spf13/cobra"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Manage the card catalog",
}

var cardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		cards, err := store.List(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cards)
	},
}

var (
	addImage  string
	addPoints int
	addAuthor string
)

var cardsAddCmd = &cobra.Command{
	Use:   "add <identity>",
	Short: "Add or replace a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if addImage == "" {
			return fmt.Errorf("--image is required")
		}
		if !catalog.ValidPoints(addPoints) {
			return fmt.Errorf("points must be 10 or 20, got %d", addPoints)
		}

		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		card := catalog.Card{
			Identity: args[0],
			Image:    addImage,
			Points:   addPoints,
			Author:   addAuthor,
		}
		if err := store.Put(cmd.Context(), card); err != nil {
			return err
		}
		fmt.Printf("Saved card %q\n", card.Identity)
		return nil
	},
}

var cardsRmCmd = &cobra.Command{
	Use:   "rm <identity>",
	Short: "Remove a card by identity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed card %q\n", args[0])
		return nil
	},
}

func init() {
	cardsAddCmd.Flags().StringVar(&addImage, "image", "", "image URL or data URI")
	cardsAddCmd.Flags().IntVar(&addPoints, "points", 10, "point value (10 or 20)")
	cardsAddCmd.Flags().StringVar(&addAuthor, "author", "", "author label")

	cardsCmd.AddCommand(cardsListCmd)
	cardsCmd.AddCommand(cardsAddCmd)
	cardsCmd.AddCommand(cardsRmCmd)
}

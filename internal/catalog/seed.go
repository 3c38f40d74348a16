package catalog

import (
	"context"
	"fmt"
)

// StockCards returns the starter card set loaded by `seed`, enough for a
// full deck with two spare. One card is worth 20 points, the rest 10.
func StockCards() []Card {
	return []Card{
		{Identity: "Biblioteca", Image: "/img/cards/biblioteca.png", Points: 10, Author: "equipe"},
		{Identity: "Quadro", Image: "/img/cards/quadro.png", Points: 10, Author: "equipe"},
		{Identity: "Lapis", Image: "/img/cards/lapis.png", Points: 10, Author: "equipe"},
		{Identity: "Caderno", Image: "/img/cards/caderno.png", Points: 10, Author: "equipe"},
		{Identity: "Mochila", Image: "/img/cards/mochila.png", Points: 10, Author: "equipe"},
		{Identity: "Globo", Image: "/img/cards/globo.png", Points: 10, Author: "equipe"},
		{Identity: "Microscopio", Image: "/img/cards/microscopio.png", Points: 10, Author: "equipe"},
		{Identity: "Trofeu", Image: "/img/cards/trofeu.png", Points: 20, Author: "equipe"},
	}
}

// Seed loads the stock card set into the store. Unless force is set, a
// non-empty catalog is left untouched. Returns the number of cards written.
func Seed(ctx context.Context, store Store, force bool) (int, error) {
	if !force {
		n, err := store.Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("count cards: %w", err)
		}
		if n > 0 {
			return 0, nil
		}
	}

	cards := StockCards()
	for _, c := range cards {
		if err := store.Put(ctx, c); err != nil {
			return 0, fmt.Errorf("seed card %q: %w", c.Identity, err)
		}
	}
	return len(cards), nil
}

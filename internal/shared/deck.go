package shared

import (
	"errors"
	"math/rand/v2"
)

const (
	// PairsPerGame is the number of catalog cards drawn for one session.
	PairsPerGame = 6
	// DeckSize is the number of playable pieces on the board (two per pair).
	DeckSize = PairsPerGame * 2
)

// ErrInsufficientCatalog is returned when the catalog holds fewer cards than
// a deck needs. The caller is expected to send the user to card management
// rather than start a game.
var ErrInsufficientCatalog = errors.New("catalog has fewer cards than a deck requires")

// BuildDeck draws a uniform-random sample of PairsPerGame definitions from
// the catalog, mints an image piece and a text piece from each, and shuffles
// the result. Instance ids are assigned after the final shuffle and equal the
// piece's board position, so they stay stable for the whole session.
//
// rand.Shuffle is a Fisher-Yates shuffle, so neither the sample nor the board
// order favors catalog insertion order.
func BuildDeck(catalog []CardDefinition) ([]PlayablePiece, error) {
	if len(catalog) < PairsPerGame {
		return nil, ErrInsufficientCatalog
	}

	drawn := make([]CardDefinition, len(catalog))
	copy(drawn, catalog)
	rand.Shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})
	drawn = drawn[:PairsPerGame]

	pieces := make([]PlayablePiece, 0, DeckSize)
	for _, def := range drawn {
		for _, variant := range []VariantKind{VariantImage, VariantText} {
			pieces = append(pieces, PlayablePiece{
				Identity: def.Identity,
				Variant:  variant,
				Image:    def.Image,
				Points:   def.Points,
			})
		}
	}

	rand.Shuffle(len(pieces), func(i, j int) {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	})
	for i := range pieces {
		pieces[i].InstanceID = i
	}

	return pieces, nil
}

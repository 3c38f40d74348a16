package shared

import (
	"errors"
	"fmt"
	"testing"
)

func testCatalog(n int) []CardDefinition {
	defs := make([]CardDefinition, n)
	for i := range defs {
		defs[i] = CardDefinition{
			Identity: fmt.Sprintf("card-%02d", i),
			Image:    fmt.Sprintf("/img/card-%02d.png", i),
			Points:   10,
			Author:   "test",
		}
	}
	return defs
}

func TestBuildDeckStructure(t *testing.T) {
	deck, err := BuildDeck(testCatalog(8))
	if err != nil {
		t.Fatalf("BuildDeck failed: %v", err)
	}

	if len(deck) != DeckSize {
		t.Fatalf("expected %d pieces, got %d", DeckSize, len(deck))
	}

	variants := make(map[string]map[VariantKind]int)
	for i, piece := range deck {
		if piece.InstanceID != i {
			t.Errorf("piece at position %d has InstanceID %d", i, piece.InstanceID)
		}
		if piece.FaceUp || piece.Resolved || piece.Highlighted {
			t.Errorf("piece %d should start face-down and unresolved", i)
		}
		if variants[piece.Identity] == nil {
			variants[piece.Identity] = make(map[VariantKind]int)
		}
		variants[piece.Identity][piece.Variant]++
	}

	if len(variants) != PairsPerGame {
		t.Fatalf("expected %d distinct identities, got %d", PairsPerGame, len(variants))
	}
	for identity, byVariant := range variants {
		if byVariant[VariantImage] != 1 || byVariant[VariantText] != 1 {
			t.Errorf("identity %q has variants %v, want one image and one text", identity, byVariant)
		}
	}
}

func TestBuildDeckInsufficientCatalog(t *testing.T) {
	for n := 0; n < PairsPerGame; n++ {
		if _, err := BuildDeck(testCatalog(n)); !errors.Is(err, ErrInsufficientCatalog) {
			t.Errorf("catalog of %d: expected ErrInsufficientCatalog, got %v", n, err)
		}
	}

	if _, err := BuildDeck(testCatalog(PairsPerGame)); err != nil {
		t.Errorf("catalog of %d should succeed, got %v", PairsPerGame, err)
	}
}

func TestBuildDeckCarriesDefinition(t *testing.T) {
	catalog := testCatalog(6)
	catalog[3].Points = 20

	deck, err := BuildDeck(catalog)
	if err != nil {
		t.Fatalf("BuildDeck failed: %v", err)
	}

	byIdentity := make(map[string][]PlayablePiece)
	for _, p := range deck {
		byIdentity[p.Identity] = append(byIdentity[p.Identity], p)
	}

	for _, def := range catalog {
		pieces := byIdentity[def.Identity]
		if len(pieces) != 2 {
			t.Fatalf("identity %q has %d pieces, want 2", def.Identity, len(pieces))
		}
		for _, p := range pieces {
			if p.Points != def.Points {
				t.Errorf("identity %q: piece points %d, want %d", def.Identity, p.Points, def.Points)
			}
			if p.Image != def.Image {
				t.Errorf("identity %q: piece image %q, want %q", def.Identity, p.Image, def.Image)
			}
		}
	}
}

// TestBuildDeckSampleVaries checks that drawing from a large catalog does not
// just take the first six definitions in insertion order.
func TestBuildDeckSampleVaries(t *testing.T) {
	catalog := testCatalog(30)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		deck, err := BuildDeck(catalog)
		if err != nil {
			t.Fatalf("BuildDeck failed: %v", err)
		}
		for _, p := range deck {
			seen[p.Identity] = true
		}
	}

	// 100 draws of 6 from 30 hitting only 6 distinct identities means the
	// sample follows insertion order.
	if len(seen) <= PairsPerGame {
		t.Errorf("after 100 builds only %d identities were drawn", len(seen))
	}
}

// Package catalog manages the card definitions the game is built from. Cards
// live in a local SQLite file by default; a hosted Postgres database can be
// used instead for shared deployments.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jvs-dev/memory-game-guadalupe/internal/shared"
)

// Card is a stored catalog entry.
type Card struct {
	Identity  string `json:"identity"`
	Image     string `json:"image"`
	Points    int    `json:"points"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

// ValidPoints reports whether a point value is one the game accepts.
func ValidPoints(p int) bool {
	return p == 10 || p == 20
}

// ErrCatalogUnavailable masks every backend failure on the fetch path. The
// game treats the catalog as a single opaque collaborator and never sees a
// typed backend error.
var ErrCatalogUnavailable = errors.New("card catalog unavailable")

// Store is the card-management surface shared by the REST API, the CLI and
// the seeder. Create is last-write-wins on identity; delete is idempotent.
type Store interface {
	List(ctx context.Context) ([]Card, error)
	Put(ctx context.Context, card Card) error
	Delete(ctx context.Context, identity string) error
	Count(ctx context.Context) (int, error)
	Close() error
}

// Open selects a backend by name. "sqlite" is the local default; "postgres"
// is the hosted alternative.
func Open(backend, sqlitePath, postgresDSN string) (Store, error) {
	switch backend {
	case "", "sqlite":
		return NewSQLiteStore(sqlitePath)
	case "postgres":
		if postgresDSN == "" {
			return nil, errors.New("postgres backend requires POSTGRES_DSN")
		}
		return NewPostgresStore(postgresDSN)
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", backend)
	}
}

// Accessor adapts a Store to the game's catalog-fetch interface.
type Accessor struct {
	store Store
}

// NewAccessor wraps a store for the game to fetch from.
func NewAccessor(store Store) *Accessor {
	return &Accessor{store: store}
}

// Fetch returns every card definition, or ErrCatalogUnavailable when the
// backend cannot be reached. The fetch is not retried here; the caller
// surfaces the failure to the user.
func (a *Accessor) Fetch(ctx context.Context) ([]shared.CardDefinition, error) {
	cards, err := a.store.List(ctx)
	if err != nil {
		log.Printf("Catalog fetch failed: %v", err)
		return nil, ErrCatalogUnavailable
	}

	defs := make([]shared.CardDefinition, len(cards))
	for i, c := range cards {
		defs[i] = shared.CardDefinition{
			Identity: c.Identity,
			Image:    c.Image,
			Points:   c.Points,
			Author:   c.Author,
		}
	}
	return defs, nil
}

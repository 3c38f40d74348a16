package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore keeps the catalog in a hosted Postgres database. It is the
// backend of choice when several installs share one card set.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the database behind the DSN and ensures the
// cards table exists.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres catalog: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate postgres catalog: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) migrate() error {
	schema := `
	create table if not exists cards (
		identity   text not null primary key,
		image      text not null,
		points     integer not null,
		author     text,
		created_at text not null
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) List(ctx context.Context) ([]Card, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT identity, image, points, author, created_at FROM cards ORDER BY created_at, identity")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.Identity, &c.Image, &c.Points, &c.Author, &c.CreatedAt); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// Put inserts a card, replacing any existing card with the same identity.
func (s *PostgresStore) Put(ctx context.Context, card Card) error {
	if card.CreatedAt == "" {
		card.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cards (identity, image, points, author, created_at) VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT(identity) DO UPDATE SET image = excluded.image, points = excluded.points, author = excluded.author`,
		card.Identity, card.Image, card.Points, card.Author, card.CreatedAt)
	return err
}

// Delete removes a card by identity. Deleting a missing card is not an error.
func (s *PostgresStore) Delete(ctx context.Context, identity string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM cards WHERE identity = $1", identity)
	return err
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cards").Scan(&n)
	return n, err
}

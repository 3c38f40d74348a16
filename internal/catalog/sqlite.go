package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps the catalog in a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
	m  sync.Mutex
}

// NewSQLiteStore opens or creates the catalog database at the given path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite catalog: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite catalog: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
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

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) List(ctx context.Context) ([]Card, error) {
	s.m.Lock()
	defer s.m.Unlock()
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
func (s *SQLiteStore) Put(ctx context.Context, card Card) error {
	s.m.Lock()
	defer s.m.Unlock()
	if card.CreatedAt == "" {
		card.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cards (identity, image, points, author, created_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(identity) DO UPDATE SET image = excluded.image, points = excluded.points, author = excluded.author`,
		card.Identity, card.Image, card.Points, card.Author, card.CreatedAt)
	return err
}

// Delete removes a card by identity. Deleting a missing card is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, identity string) error {
	s.m.Lock()
	defer s.m.Unlock()
	_, err := s.db.ExecContext(ctx, "DELETE FROM cards WHERE identity = ?", identity)
	return err
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	s.m.Lock()
	defer s.m.Unlock()
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cards").Scan(&n)
	return n, err
}

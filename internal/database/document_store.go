package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/familybell/bell-scheduler/internal/domain/entity"
)

// DocumentKey is the row key under which the bell document is stored.
const DocumentKey = "family_bell_data"

// DocumentStore keeps the bell document as a single JSON row in sqlite.
type DocumentStore struct {
	conn *sql.DB
	key  string
}

func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{conn: db.conn, key: DocumentKey}
}

func (s *DocumentStore) Load(ctx context.Context) (*entity.Document, error) {
	var raw string
	err := s.conn.QueryRowContext(ctx,
		"SELECT value FROM documents WHERE key = ?", s.key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	var doc entity.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}

func (s *DocumentStore) Save(ctx context.Context, doc *entity.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO documents (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		s.key, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/familybell/bell-scheduler/internal/domain/entity"
	"github.com/go-redis/redis/v8"
)

// DefaultKey is the redis key under which the bell document is stored.
const DefaultKey = "family_bell_data"

// DocumentStore keeps the bell document as a single JSON value in redis.
type DocumentStore struct {
	client *redis.Client
	key    string
}

func New(client *redis.Client, key string) *DocumentStore {
	if key == "" {
		key = DefaultKey
	}
	return &DocumentStore{client: client, key: key}
}

func (s *DocumentStore) Load(ctx context.Context) (*entity.Document, error) {
	raw, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
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

	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

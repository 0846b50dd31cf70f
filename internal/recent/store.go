// Package recent tracks the pages each user visited most recently. The list
// lives in an external key-value store (Redis in production) so it survives
// restarts and is shared across replicas; the query router itself stays pure.
package recent

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/storage/redis/v3"
	"github.com/google/uuid"
)

// maxEntries bounds the per-user list.
const maxEntries = 10

// ttl is how long an untouched list is kept.
const ttl = 30 * 24 * time.Hour

// KV is the slice of the storage interface the store needs. Satisfied by
// gofiber storage drivers.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
}

// Entry is one visited page.
type Entry struct {
	Route     string    `json:"route"`
	Label     string    `json:"label"`
	VisitedAt time.Time `json:"visited_at"`
}

// Store is a per-user MRU list of visited pages.
type Store struct {
	kv KV
}

// New creates a store backed by the given key-value storage.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// NewRedis creates a store backed by Redis.
func NewRedis(url string) *Store {
	return New(redis.New(redis.Config{URL: url}))
}

func key(userID uuid.UUID) string {
	return "recent:" + userID.String()
}

// Touch records a visit, moving the route to the front of the user's list.
func (s *Store) Touch(userID uuid.UUID, route, label string) error {
	entries, err := s.List(userID)
	if err != nil {
		return err
	}

	updated := make([]Entry, 0, maxEntries)
	updated = append(updated, Entry{Route: route, Label: label, VisitedAt: time.Now()})
	for _, e := range entries {
		if e.Route == route {
			continue
		}
		updated = append(updated, e)
		if len(updated) == maxEntries {
			break
		}
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to encode recent pages: %w", err)
	}
	return s.kv.Set(key(userID), data, ttl)
}

// List returns the user's recent pages, most recent first. A missing or
// corrupt list degrades to empty.
func (s *Store) List(userID uuid.UUID) ([]Entry, error) {
	data, err := s.kv.Get(key(userID))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt value is not worth failing a query over.
		return nil, nil
	}
	return entries, nil
}

// Clear removes the user's list.
func (s *Store) Clear(userID uuid.UUID) error {
	return s.kv.Delete(key(userID))
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagelens"
)

// Compile-time interface verification.
var _ pagelens.SessionStore = (*SessionStore)(nil)

// SessionStore implements pagelens.SessionStore using SQLite. Values are
// stored as JSON next to an xxHash of the encoding, so rewriting an
// identical value is detected without notifying subscribers.
type SessionStore struct {
	db *DB

	mu          sync.Mutex
	subscribers []subscriber
	nextID      int
}

type subscriber struct {
	id int
	fn pagelens.SessionChangeFunc
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(db *DB) *SessionStore {
	return &SessionStore{db: db}
}

// hashValue computes the xxHash of an encoded value as a hex string.
func hashValue(encoded []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(encoded))
}

// Get decodes the value stored under key into v.
func (s *SessionStore) Get(ctx context.Context, key string, v any) error {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session_values WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return pagelens.Errorf(pagelens.ENOTFOUND, "session key %q not found", key)
	}
	if err != nil {
		return fmt.Errorf("reading session key %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(value), v); err != nil {
		return fmt.Errorf("decoding session key %q: %w", key, err)
	}
	return nil
}

// Set stores all values in one transaction. Subscribers are notified of
// the keys whose encoded value changed, in key order.
func (s *SessionStore) Set(ctx context.Context, values map[string]any) error {
	keys := make([]string, 0, len(values))
	encoded := make(map[string][]byte, len(values))
	for key, v := range values {
		if key == "" {
			return pagelens.Errorf(pagelens.EINVALID, "session key required")
		}
		b, err := json.Marshal(v)
		if err != nil {
			return pagelens.Errorf(pagelens.EINVALID, "session key %q: value is not JSON-encodable: %v", key, err)
		}
		keys = append(keys, key)
		encoded[key] = b
	}
	sort.Strings(keys)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	var changes []pagelens.SessionChange
	for _, key := range keys {
		value := encoded[key]
		hash := hashValue(value)

		var oldValue, oldHash string
		err := tx.QueryRowContext(ctx, `SELECT value, hash FROM session_values WHERE key = ?`, key).Scan(&oldValue, &oldHash)
		exists := err == nil
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("reading session key %q: %w", key, err)
		}
		if exists && oldHash == hash {
			continue
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO session_values (key, value, hash, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				hash = excluded.hash,
				updated_at = excluded.updated_at
		`, key, string(value), hash, now); err != nil {
			return fmt.Errorf("writing session key %q: %w", key, err)
		}

		change := pagelens.SessionChange{Key: key, NewValue: json.RawMessage(value)}
		if exists {
			change.OldValue = json.RawMessage(oldValue)
		}
		changes = append(changes, change)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing session values: %w", err)
	}

	s.notify(changes)
	return nil
}

// Remove deletes keys. Subscribers are notified of the keys that existed.
func (s *SessionStore) Remove(ctx context.Context, keys ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var changes []pagelens.SessionChange
	for _, key := range keys {
		var oldValue string
		err := tx.QueryRowContext(ctx, `SELECT value FROM session_values WHERE key = ?`, key).Scan(&oldValue)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading session key %q: %w", key, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM session_values WHERE key = ?`, key); err != nil {
			return fmt.Errorf("removing session key %q: %w", key, err)
		}
		changes = append(changes, pagelens.SessionChange{Key: key, OldValue: json.RawMessage(oldValue)})
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing session removal: %w", err)
	}

	s.notify(changes)
	return nil
}

// Keys returns all stored keys in lexical order.
func (s *SessionStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM session_values ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing session keys: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Subscribe registers fn to be called after every change. Callbacks run
// on the goroutine that made the change, outside the store's lock.
func (s *SessionStore) Subscribe(fn pagelens.SessionChangeFunc) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subscribers {
				if sub.id == id {
					s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *SessionStore) notify(changes []pagelens.SessionChange) {
	if len(changes) == 0 {
		return
	}

	s.mu.Lock()
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(changes)
	}
}

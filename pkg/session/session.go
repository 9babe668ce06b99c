// Package session persists the single login record that represents the
// back office's authenticated state.
//
// One record, one well-known key: presence means logged in, absence means
// logged out. The record survives process restarts through a Backend —
// a storage disk file by default, or Redis. Concurrent writers are not
// coordinated; last write wins.
//
// Usage:
//
//	store := session.New[models.User](session.DefaultBackend(), config.SessionKey())
//	store.Put(user)            // login
//	u, ok := store.Current()   // restore at startup
//	store.Clear()              // logout
package session

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/danghq/shopdesk/config"
	"github.com/danghq/shopdesk/pkg/cache"
	"github.com/danghq/shopdesk/pkg/crypt"
	"github.com/danghq/shopdesk/pkg/storage"
)

// Backend reads and writes the raw serialized record.
type Backend interface {
	// Read returns the stored bytes for key, or false when no record
	// exists or the backing store is unavailable.
	Read(key string) ([]byte, bool)

	// Write stores data under key, replacing any previous record.
	Write(key string, data []byte) error

	// Clear removes the record for key. Clearing an absent record is not
	// an error.
	Clear(key string) error
}

// Store holds at most one record of type T under a fixed key.
type Store[T any] struct {
	backend Backend
	key     string
}

// New builds a Store on the given backend and key.
func New[T any](backend Backend, key string) *Store[T] {
	return &Store[T]{backend: backend, key: key}
}

// Current returns the persisted record, or false when none exists, the
// store is unreachable, or the record does not decode.
func (s *Store[T]) Current() (T, bool) {
	var v T
	raw, ok := s.backend.Read(s.key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false
	}
	return v, true
}

// Put serializes v and makes it the current record. Last write wins.
func (s *Store[T]) Put(v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	if err := s.backend.Write(s.key, raw); err != nil {
		return fmt.Errorf("session: write: %w", err)
	}
	return nil
}

// Clear removes the current record.
func (s *Store[T]) Clear() error {
	if err := s.backend.Clear(s.key); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}

// DefaultBackend builds the backend selected by SESSION_DRIVER:
// "file" (storage default disk, optionally encrypted with APP_KEY) or
// "redis" (shared cache client).
func DefaultBackend() Backend {
	if config.SessionDriver() == "redis" {
		return RedisBackend{}
	}
	return DiskBackend{Disk: storage.Use("local"), Secret: config.AppKey()}
}

// ─── Disk backend ─────────────────────────────────────────────────────────────

// DiskBackend stores the record as one file on a storage disk. When Secret
// is non-empty the record is encrypted at rest with AES-GCM.
type DiskBackend struct {
	Disk   storage.Disk
	Secret string
}

// keyPath maps a session key to a disk path, e.g.
// "shopdesk:current_user" → "shopdesk/current_user.json".
func (b DiskBackend) keyPath(key string) string {
	return strings.ReplaceAll(key, ":", "/") + ".json"
}

func (b DiskBackend) Read(key string) ([]byte, bool) {
	path := b.keyPath(key)
	if !b.Disk.Exists(path) {
		return nil, false
	}
	raw, err := b.Disk.Get(path)
	if err != nil {
		return nil, false
	}
	if b.Secret != "" {
		plain, err := crypt.Decrypt(b.Secret, string(raw))
		if err != nil {
			return nil, false
		}
		return plain, true
	}
	return raw, true
}

func (b DiskBackend) Write(key string, data []byte) error {
	if b.Secret != "" {
		enc, err := crypt.Encrypt(b.Secret, data)
		if err != nil {
			return err
		}
		data = []byte(enc)
	}
	return b.Disk.Put(b.keyPath(key), data)
}

func (b DiskBackend) Clear(key string) error {
	return b.Disk.Delete(b.keyPath(key))
}

// ─── Redis backend ────────────────────────────────────────────────────────────

// RedisBackend stores the record through the shared cache client with no
// expiry; the session lives until an explicit logout.
type RedisBackend struct{}

func (RedisBackend) Read(key string) ([]byte, bool) {
	var raw json.RawMessage
	if !cache.Get(key, &raw) {
		return nil, false
	}
	return raw, true
}

func (RedisBackend) Write(key string, data []byte) error {
	return cache.Set(key, json.RawMessage(data), 0)
}

func (RedisBackend) Clear(key string) error {
	return cache.Del(key)
}

// Package store persists computed layouts so they can be fetched again by ID.
//
// Backends:
//   - [MemoryStore]: in-process map for tests and single-instance servers
//   - [FileStore]: one JSON file per layout under a directory
//   - [MongoStore]: MongoDB collection shared by multiple API instances
//
// # Usage
//
//	e := store.NewEntry(result.Layout, result.DiagramHash, store.DefaultTTL)
//	if err := s.Save(ctx, e); err != nil {
//	    return err
//	}
//
//	e, err := s.Get(ctx, id)
//	if errors.Is(err, store.ErrNotFound) {
//	    // unknown or expired
//	}
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/erdgraph/pkg/graph"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when no live entry has the requested ID.
	ErrNotFound = errors.New("layout not found")
)

// DefaultTTL is how long stored layouts live.
const DefaultTTL = 30 * 24 * time.Hour

// Entry is a stored layout.
type Entry struct {
	ID          string       `json:"id" bson:"_id"`
	DiagramHash string       `json:"diagram_hash" bson:"diagram_hash"`
	Layout      graph.Layout `json:"layout" bson:"layout"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
	ExpiresAt   time.Time    `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
}

// NewEntry wraps l with a fresh random ID. A ttl of zero never expires.
func NewEntry(l graph.Layout, diagramHash string, ttl time.Duration) *Entry {
	now := time.Now().UTC()
	e := &Entry{
		ID:          uuid.NewString(),
		DiagramHash: diagramHash,
		Layout:      l,
		CreatedAt:   now,
	}
	if ttl > 0 {
		e.ExpiresAt = now.Add(ttl)
	}
	return e
}

// IsExpired reports whether e has passed its expiry time.
func (e *Entry) IsExpired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// Store is the interface for layout storage backends.
type Store interface {
	// Save inserts or replaces e.
	Save(ctx context.Context, e *Entry) error

	// Get returns the entry with the given ID, or ErrNotFound when it does
	// not exist or has expired.
	Get(ctx context.Context, id string) (*Entry, error)

	// Delete removes an entry. It returns ErrNotFound if nothing was removed.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired entries (may be a no-op when the backend
	// expires entries itself).
	Cleanup(ctx context.Context) error

	Close() error
}

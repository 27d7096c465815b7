// Package store keeps solved circuits so API clients can fetch them by ID.
//
// Three backends implement [Store]:
//   - [MemoryStore]: process-local, for tests and single-instance servers
//   - [FileStore]: one JSON file per record, survives restarts
//   - [MongoStore]: MongoDB, for servers behind a load balancer
//
// Records expire after a TTL. MongoDB expires them with a TTL index; the
// other stores drop them on read and on [Store.Cleanup].
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/polyorder/pkg/circuit"
	"github.com/matzehuels/polyorder/pkg/errors"
	polyio "github.com/matzehuels/polyorder/pkg/io"
	"github.com/matzehuels/polyorder/pkg/pipeline"
)

// DefaultTTL is how long a record is kept.
const DefaultTTL = 24 * time.Hour

// Record is one solved circuit.
type Record struct {
	ID          string           `json:"id" bson:"_id"`
	Circuit     *circuit.Circuit `json:"circuit" bson:"circuit"`
	CircuitHash string           `json:"circuit_hash" bson:"circuit_hash"`
	Report      *polyio.Report   `json:"report" bson:"report"`

	// MaxPaths is the path limit the report was solved with. Re-solving
	// with it reproduces the report's orderings.
	MaxPaths int `json:"max_paths,omitempty" bson:"max_paths,omitempty"`

	CreatedAt   time.Time        `json:"created_at" bson:"created_at"`
	ExpiresAt   time.Time        `json:"expires_at" bson:"expires_at"`
}

// IsExpired reports whether the record has outlived its TTL.
func (r *Record) IsExpired() bool {
	return !r.ExpiresAt.IsZero() && time.Now().After(r.ExpiresAt)
}

// NewRecord wraps a pipeline result solved with opts under a fresh random
// ID.
func NewRecord(res *pipeline.Result, opts pipeline.Options, ttl time.Duration) *Record {
	now := time.Now().UTC()
	rec := &Record{
		ID:          uuid.NewString(),
		Circuit:     res.Circuit,
		CircuitHash: res.CircuitHash,
		Report:      polyio.NewReport(res),
		MaxPaths:    opts.MaxPaths,
		CreatedAt:   now,
	}
	if ttl > 0 {
		rec.ExpiresAt = now.Add(ttl)
	}
	return rec
}

// ValidateID checks that id is a UUID, so malformed IDs never reach a
// backend.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid record id %q", id)
	}
	return nil
}

// Store persists records.
type Store interface {
	// Put inserts or replaces a record.
	Put(ctx context.Context, rec *Record) error

	// Get returns the record with id, or a NOT_FOUND error if it is
	// missing or expired.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns up to limit unexpired records, newest first.
	List(ctx context.Context, limit int) ([]*Record, error)

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired records.
	Cleanup(ctx context.Context) error

	Close(ctx context.Context) error
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "no solve with id %s", id)
}

package entity

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when the target of an update/delete vanished.
	ErrNotFound = errors.New("record not found")
	// ErrTimeout is returned when an operation exceeds its context deadline.
	ErrTimeout = errors.New("store operation timed out")
)

// Descriptor tells a Store how to read and stamp the identity of a record
// type. Records are plain value structs; the descriptor keeps the store free
// of any field probing.
type Descriptor[T any] struct {
	// Key returns the record's unique, immutable identifier.
	Key func(T) string
	// Num returns the record's per-type sequence number.
	Num func(T) int
	// Stamp returns a copy of rec with its identity set.
	Stamp func(rec T, id string, num int) T
}

// Store is the sole owner of one record type's in-memory collection. It
// emulates a remote backend: every operation waits a configurable latency and
// honors context cancellation. Mutations are guarded by a RWMutex; two
// near-simultaneous mutations to the same record resolve last-write-wins.
type Store[T any] struct {
	desc    Descriptor[T]
	latency time.Duration

	mu      sync.RWMutex
	records []T
	nextNum int
}

// NewStore seeds a store. The sequence counter starts above the highest Num
// present in the seed set.
func NewStore[T any](desc Descriptor[T], seed []T, latency time.Duration) *Store[T] {
	s := &Store[T]{
		desc:    desc,
		latency: latency,
		records: append([]T(nil), seed...),
		nextNum: 1,
	}
	for _, rec := range seed {
		if n := desc.Num(rec); n >= s.nextNum {
			s.nextNum = n + 1
		}
	}
	return s
}

// List returns a snapshot copy of all records in insertion order.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.records...), nil
}

// Create assigns a fresh identifier and the next sequence number, appends the
// record and returns it. Identifiers are never reused, even after deletion.
func (s *Store[T]) Create(ctx context.Context, fields T) (T, error) {
	var zero T
	if err := s.wait(ctx); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.desc.Stamp(fields, uuid.New().String(), s.nextNum)
	s.nextNum++
	s.records = append(s.records, rec)
	return rec, nil
}

// Update replaces all mutable fields of the matched record; identity and
// sequence number are preserved. Fails with ErrNotFound when id is unknown.
func (s *Store[T]) Update(ctx context.Context, id string, fields T) (T, error) {
	var zero T
	if err := s.wait(ctx); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return zero, ErrNotFound
	}
	rec := s.desc.Stamp(fields, id, s.desc.Num(s.records[idx]))
	s.records[idx] = rec
	return rec, nil
}

// Delete removes the matched record. Fails with ErrNotFound when id is
// unknown, which makes a repeated delete detectable.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return ErrNotFound
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return nil
}

// index must be called with the lock held.
func (s *Store[T]) index(id string) int {
	for i, rec := range s.records {
		if s.desc.Key(rec) == id {
			return i
		}
	}
	return -1
}

// wait emulates backend latency while honoring cancellation.
func (s *Store[T]) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctxErr(ctx)
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctxErr(ctx)
	}
}

func ctxErr(ctx context.Context) error {
	err := ctx.Err()
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

// Package console implements the generic entity management console that every
// administration screen is built from: an in-memory ordered store, the
// search/filter predicate, the add/edit dialog state machine, and the derived
// table/badge/stats projections. Domain packages parameterize it with their
// record type, field defaults, and validation rules.
package console

import "sync"

// Record is the minimal contract a console entity satisfies. Identifiers are
// display ids ("P003", "INV-0042", ...) or UUID strings, unique within one
// store only.
type Record interface {
	EntityID() string
}

// InsertPolicy controls where Insert places a new record in the sequence.
// Screens differ on whether new entries surface at the top or bottom of the
// table, so the placement is configured per store.
type InsertPolicy int

const (
	Append InsertPolicy = iota
	Prepend
)

// Store holds the ordered in-memory collection backing one console. Each
// store is owned by exactly one module; there is no cross-store consistency
// (removing a patient does not cascade to appointments or invoices). State is
// rebuilt from seed data on every process start.
//
// All operations are total: mutations on absent ids report false rather than
// erroring.
type Store[T Record] struct {
	mu     sync.RWMutex
	items  []T
	seed   []T
	policy InsertPolicy
}

// NewStore builds a store pre-populated with seed records.
func NewStore[T Record](policy InsertPolicy, seed ...T) *Store[T] {
	s := &Store[T]{policy: policy, seed: append([]T(nil), seed...)}
	s.items = append([]T(nil), s.seed...)
	return s
}

// List returns the records in source order. The slice is a copy; the records
// themselves are shared.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.items...)
}

// Len reports the current record count.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// GetByID returns the record with the given id.
func (s *Store[T]) GetByID(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Insert places rec according to the store's insert policy.
func (s *Store[T]) Insert(rec T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.policy == Prepend {
		s.items = append([]T{rec}, s.items...)
		return
	}
	s.items = append(s.items, rec)
}

// ReplaceByID swaps the record whose id matches, keeping its position.
func (s *Store[T]) ReplaceByID(id string, rec T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.EntityID() == id {
			s.items[i] = rec
			return true
		}
	}
	return false
}

// RemoveByID drops the record whose id matches. Removal is immediate; the
// console has no confirmation step or undo.
func (s *Store[T]) RemoveByID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Reset discards all mutations and restores the seed data, mirroring what a
// remount of the original screen did.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]T(nil), s.seed...)
}

// Package records implements the in-memory record collections. One generic
// Store is instantiated per record kind; collections live for the process
// lifetime only.
package records

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/crmkeeper/internal/client/models"
	"github.com/dmitrijs2005/crmkeeper/internal/common"
	"github.com/dmitrijs2005/crmkeeper/internal/logging"
)

// Store is an ordered collection of records of one kind. Ids come from a
// monotonic counter, so they are distinct however fast records are added and
// are never reused after a delete. Order is insertion order.
type Store[T models.Fields] struct {
	mu     sync.RWMutex
	items  []models.Record[T]
	lastID int64
	log    logging.Logger
}

func NewStore[T models.Fields](log logging.Logger) *Store[T] {
	var zero T
	return &Store[T]{log: log.With("store", string(zero.Kind()))}
}

// Add appends a record built from fields and returns it.
func (s *Store[T]) Add(fields T) models.Record[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	rec := models.Record[T]{ID: s.lastID, Fields: fields}
	s.items = append(s.items, rec)

	s.log.Debug(context.Background(), "record added", "id", rec.ID)
	return rec
}

// Update replaces every field of record id, keeping its position.
// Returns common.ErrorNotFound, leaving the collection unchanged, if there is
// no such record.
func (s *Store[T]) Update(id int64, fields T) (models.Record[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Record[T]{}, fmt.Errorf("update %d: %w", id, common.ErrorNotFound)
	}
	s.items[i].Fields = fields

	s.log.Debug(context.Background(), "record updated", "id", id)
	return s.items[i], nil
}

// Delete removes record id. Returns common.ErrorNotFound if there is no such
// record; the collection is unchanged in that case.
func (s *Store[T]) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete %d: %w", id, common.ErrorNotFound)
	}
	s.items = slices.Delete(s.items, i, i+1)

	s.log.Debug(context.Background(), "record deleted", "id", id)
	return nil
}

// Get returns record id.
func (s *Store[T]) Get(id int64) (models.Record[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Record[T]{}, false
	}
	return s.items[i], true
}

// List returns a snapshot of the collection in insertion order.
func (s *Store[T]) List() []models.Record[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T]) indexOf(id int64) int {
	return slices.IndexFunc(s.items, func(r models.Record[T]) bool { return r.ID == id })
}

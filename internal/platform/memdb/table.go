// Package memdb implements the insertion-ordered in-memory tables that back
// every collection. All state lives in process memory and is lost on restart.
package memdb

import "sync"

// Table is an in-memory collection with auto-incrementing int64 ids.
// Individual calls are atomic; sequences of calls are not, so a
// read-modify-write spanning Get and Update has no wider isolation.
type Table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	order  []int64
	nextID int64
}

// NewTable returns an empty table whose first assigned id is 1.
func NewTable[T any]() *Table[T] {
	return &Table[T]{rows: make(map[int64]T), nextID: 1}
}

// Insert assigns the next id, stores the row produced by build and returns it.
func (t *Table[T]) Insert(build func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	row := build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row
}

// Get returns the row stored under id.
func (t *Table[T]) Get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

// Update replaces the row under id with the result of apply. The second
// return is false when no row exists for id.
func (t *Table[T]) Update(id int64, apply func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	row = apply(row)
	t.rows[id] = row
	return row, true
}

// List returns all rows in insertion order.
func (t *Table[T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// Find returns the first row in insertion order matching the predicate.
func (t *Table[T]) Find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns all rows matching the predicate, in insertion order.
func (t *Table[T]) Filter(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0)
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			out = append(out, row)
		}
	}
	return out
}

// Len reports the number of stored rows.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

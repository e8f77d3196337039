// Package memdb provides the process-lifetime in-memory store of the wallet.
package memdb

import "sync"

// Row is implemented by every entity kept in a Table.
type Row[T any] interface {
	Clone() T
}

// Table is a collection of rows keyed by sequential ids starting from 1.
//
// Ids are never reused. Rows are copied on every read and write, so callers
// never share memory with the table.
type Table[T Row[T]] struct {
	mu    sync.RWMutex
	rows  map[int32]T
	order []int32
	next  int32
}

// NewTable returns an empty table.
func NewTable[T Row[T]]() *Table[T] {
	return &Table[T]{
		rows: make(map[int32]T),
		next: 1,
	}
}

// Get returns the row with the given id.
func (t *Table[T]) Get(id int32) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return row, false
	}

	return row.Clone(), true
}

// List returns all rows in insertion order.
func (t *Table[T]) List() []T {
	return t.Filter(func(T) bool { return true })
}

// Filter returns the rows accepted by match in insertion order.
func (t *Table[T]) Filter(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	items := []T{}

	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			items = append(items, row.Clone())
		}
	}

	return items
}

// Find returns the first row accepted by match.
func (t *Table[T]) Find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			return row.Clone(), true
		}
	}

	var zero T

	return zero, false
}

// Insert stores the row made by build under the next id.
//
// check sees every existing row first; the first error it returns aborts the
// insert and the id counter is left untouched.
func (t *Table[T]) Insert(check func(existing T) error, build func(id int32) T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if check != nil {
		for _, id := range t.order {
			if err := check(t.rows[id]); err != nil {
				var zero T
				return zero, err
			}
		}
	}

	id := t.next
	row := build(id).Clone()

	t.rows[id] = row
	t.order = append(t.order, id)
	t.next++

	return row.Clone(), nil
}

// Update merges apply onto a copy of the row with the given id and stores it.
//
// check compares the merged row with every other row; its first error discards
// the change. ok is false when no row has the id, in which case nothing changes.
func (t *Table[T]) Update(id int32, apply func(row *T), check func(updated, other T) error) (row T, ok bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.rows[id]
	if !ok {
		return row, false, nil
	}

	updated := current.Clone()
	apply(&updated)

	if check != nil {
		for _, otherID := range t.order {
			if otherID == id {
				continue
			}

			if err := check(updated, t.rows[otherID]); err != nil {
				return row, true, err
			}
		}
	}

	t.rows[id] = updated.Clone()

	return updated, true, nil
}

// Len returns the number of rows.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.order)
}

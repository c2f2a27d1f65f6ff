package store

import "github.com/MoyaiAJ/ToDoApp/internal/model"

// In-memory storage. One ordered collection per screen session.
// No locking; everything runs on the UI event loop.

// Store holds the items in insertion order. Mutations address items by id,
// so positions never shift except when something is removed.
type Store struct {
	items []model.Item
}

// New builds a store holding the given items, in the given order.
func New(items ...model.Item) *Store {
	s := &Store{}
	if len(items) > 0 {
		s.items = append(s.items, items...)
	}
	return s
}

// Add appends it at the end of the collection.
func (s *Store) Add(it model.Item) {
	s.items = append(s.items, it)
}

// Get looks up an item by id.
func (s *Store) Get(id int64) (model.Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// ReplaceByID overwrites the item carrying id, keeping its position.
// It reports whether the id was found; an absent id changes nothing.
func (s *Store) ReplaceByID(id int64, it model.Item) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = it
			return true
		}
	}
	return false
}

// RemoveByID deletes the item carrying id, closing the gap so the order of
// the rest is preserved. It reports whether the id was found.
func (s *Store) RemoveByID(id int64) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// All returns a copy of the collection in insertion order. Callers may hold
// the slice across later mutations.
func (s *Store) All() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Active returns the items not yet completed, in store order. Partitions are
// derived on every call, never cached.
func (s *Store) Active() []model.Item {
	return s.filter(false)
}

// Completed returns the checked-off items, in store order.
func (s *Store) Completed() []model.Item {
	return s.filter(true)
}

func (s *Store) filter(completed bool) []model.Item {
	out := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		if it.Completed == completed {
			out = append(out, it)
		}
	}
	return out
}

// Len reports how many items the store holds.
func (s *Store) Len() int {
	return len(s.items)
}

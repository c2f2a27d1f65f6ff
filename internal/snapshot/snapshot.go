// Package snapshot flattens the item collection into the primitive sequence
// carried by the session bundle, and rebuilds collections from it.
//
// The flat shape is three slots per item, in store order:
//
//	[id0, label0, completed0, id1, label1, completed1, ...]
//
// with int64, string and bool slot types. An empty collection flattens to an
// empty sequence. Decoding is defensive: a buffer whose length is not a
// multiple of three, or whose slots carry the wrong types, never produces an
// error. The longest well-formed prefix is restored and the rest is dropped.
package snapshot

import "github.com/MoyaiAJ/ToDoApp/internal/model"

const slotsPerItem = 3

// Encode flattens items in order. An empty collection yields nil.
func Encode(items []model.Item) []any {
	if len(items) == 0 {
		return nil
	}
	flat := make([]any, 0, len(items)*slotsPerItem)
	for _, it := range items {
		flat = append(flat, it.ID, it.Label, it.Completed)
	}
	return flat
}

// Decode rebuilds items from a flat sequence. Decoding stops at the first
// group that is incomplete or ill-typed; everything before it is kept.
func Decode(flat []any) []model.Item {
	items := make([]model.Item, 0, len(flat)/slotsPerItem)
	for i := 0; i+slotsPerItem <= len(flat); i += slotsPerItem {
		id, ok := asID(flat[i])
		if !ok {
			break
		}
		label, ok := flat[i+1].(string)
		if !ok {
			break
		}
		completed, ok := flat[i+2].(bool)
		if !ok {
			break
		}
		items = append(items, model.Item{ID: id, Label: label, Completed: completed})
	}
	return items
}

// asID accepts the int64 slots Encode writes, plus untyped int constants
// from hand-assembled buffers.
func asID(v any) (int64, bool) {
	switch id := v.(type) {
	case int64:
		return id, true
	case int:
		return int64(id), true
	}
	return 0, false
}

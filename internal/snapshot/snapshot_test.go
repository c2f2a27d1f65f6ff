package snapshot

import (
	"testing"

	"github.com/MoyaiAJ/ToDoApp/internal/model"
)

func TestEncodeLayout(t *testing.T) {
	flat := Encode([]model.Item{
		{ID: 1, Label: "Buy milk", Completed: false},
		{ID: 2, Label: "Walk the dog", Completed: true},
	})

	want := []any{int64(1), "Buy milk", false, int64(2), "Walk the dog", true}
	if len(flat) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(flat))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("slot %d: expected %#v, got %#v", i, want[i], flat[i])
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	if flat := Encode(nil); len(flat) != 0 {
		t.Errorf("expected empty sequence, got %d slots", len(flat))
	}
	if flat := Encode([]model.Item{}); len(flat) != 0 {
		t.Errorf("expected empty sequence, got %d slots", len(flat))
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		items []model.Item
	}{
		{name: "empty", items: nil},
		{name: "single", items: []model.Item{{ID: 1, Label: "Buy milk"}}},
		{name: "mixed", items: []model.Item{
			{ID: 1, Label: "Buy milk", Completed: true},
			{ID: 2, Label: "Walk the dog"},
			{ID: 5, Label: "Write report", Completed: true},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(Encode(tt.items))
			if len(got) != len(tt.items) {
				t.Fatalf("expected %d items back, got %d", len(tt.items), len(got))
			}
			for i := range tt.items {
				if got[i] != tt.items[i] {
					t.Errorf("item %d: expected %+v, got %+v", i, tt.items[i], got[i])
				}
			}
		})
	}
}

func TestDecodeTruncatedTail(t *testing.T) {
	tests := []struct {
		name string
		flat []any
		keep int
	}{
		{name: "lone id", flat: []any{int64(1)}, keep: 0},
		{name: "id and label", flat: []any{int64(1), "Buy milk"}, keep: 0},
		{name: "one item plus dangling id", flat: []any{int64(1), "Buy milk", false, int64(2)}, keep: 1},
		{name: "one item plus dangling id and label", flat: []any{int64(1), "Buy milk", false, int64(2), "Walk the dog"}, keep: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.flat)
			if len(got) != tt.keep {
				t.Fatalf("expected %d items kept, got %d", tt.keep, len(got))
			}
			if tt.keep == 1 && (got[0].ID != 1 || got[0].Label != "Buy milk") {
				t.Errorf("unexpected restored item: %+v", got[0])
			}
		})
	}
}

func TestDecodeIllTypedGroupStopsThere(t *testing.T) {
	tests := []struct {
		name string
		flat []any
		keep int
	}{
		{
			name: "bad id slot",
			flat: []any{"not-an-id", "label", false},
			keep: 0,
		},
		{
			name: "bad label slot",
			flat: []any{int64(1), "ok", true, int64(2), 7.5, false},
			keep: 1,
		},
		{
			name: "bad completed slot",
			flat: []any{int64(1), "ok", true, int64(2), "fine", "yes"},
			keep: 1,
		},
		{
			name: "well formed prefix survives a bad middle",
			flat: []any{int64(1), "a", false, nil, "b", true, int64(3), "c", false},
			keep: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.flat)
			if len(got) != tt.keep {
				t.Fatalf("expected %d items kept, got %d", tt.keep, len(got))
			}
		})
	}
}

func TestDecodeAcceptsIntIDs(t *testing.T) {
	got := Decode([]any{1, "Buy milk", false})
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	if got[0].ID != 1 {
		t.Errorf("expected id 1, got %d", got[0].ID)
	}
}

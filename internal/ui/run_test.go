package ui

import (
	"testing"

	"github.com/MoyaiAJ/ToDoApp/internal/session"
)

func TestNewSessionFresh(t *testing.T) {
	bundle := session.NewBundle()

	svc, notices, restored := newSession(bundle, []string{"Buy milk", "  ", "Walk the dog"}, nil)
	if restored {
		t.Fatal("an empty bundle must mean a fresh session")
	}

	items := svc.Items()
	if len(items) != 2 || items[0].Label != "Buy milk" || items[1].Label != "Walk the dog" {
		t.Fatalf("unexpected seeded items: %+v", items)
	}
	if got := notices.Drain(); len(got) != 0 {
		t.Errorf("seed notices leaked into the session: %v", got)
	}
}

func TestNewSessionRestores(t *testing.T) {
	bundle := session.NewBundle()

	// First session: build some state and flatten it, the way the host
	// does right before tearing a screen down.
	first, _, _ := newSession(bundle, []string{"Buy milk", "Walk the dog"}, nil)
	dog := first.Items()[1]
	first.ToggleItem(dog.ID, true)
	bundle.Put(stateKey, first.Snapshot())

	second, _, restored := newSession(bundle, []string{"ignored seed"}, nil)
	if !restored {
		t.Fatal("expected the second session to restore")
	}

	items := second.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 restored items, got %d", len(items))
	}
	if items[0] != first.Items()[0] || items[1] != first.Items()[1] {
		t.Errorf("restored state differs: %+v vs %+v", items, first.Items())
	}

	// Restored state is consumed, so a third session starts fresh.
	if _, ok := bundle.Get(stateKey); ok {
		t.Error("the bundle key must be consumed by the restore")
	}

	// Ids keep counting from where the restored collection left off.
	fresh, ok := second.AddItem("Write report")
	if !ok {
		t.Fatal("expected the add to be accepted")
	}
	if fresh.ID <= dog.ID {
		t.Errorf("new id %d collides with restored ids", fresh.ID)
	}
}

func TestNewSessionEmptyRestoredCollection(t *testing.T) {
	bundle := session.NewBundle()
	bundle.Put(stateKey, nil)

	svc, _, restored := newSession(bundle, []string{"seed must not apply"}, nil)
	if !restored {
		t.Fatal("a present-but-empty value still counts as restored")
	}
	if svc.Len() != 0 {
		t.Errorf("expected an empty restored collection, got %d items", svc.Len())
	}
}

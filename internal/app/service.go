// Package app applies user actions to the item collection. The service is
// the only writer: screens call the three mutations and re-read the
// collection afterwards instead of patching their own copies.
package app

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/MoyaiAJ/ToDoApp/internal/model"
	"github.com/MoyaiAJ/ToDoApp/internal/snapshot"
	"github.com/MoyaiAJ/ToDoApp/internal/store"
)

// EmptyLabelNotice is what the notifier receives when an add is rejected
// because the label was blank after trimming.
const EmptyLabelNotice = "Item cannot be empty"

// Service owns the collection for one screen session. It runs on the UI
// event loop only, so there is no locking anywhere beneath it.
type Service struct {
	store    *store.Store
	notifier Notifier
	log      *log.Logger
	nextID   int64
}

// New wires a service around st. A nil store starts empty, a nil notifier
// drops notices and a nil logger discards everything. The id counter starts
// above the highest id already present so restored items keep their
// identity and new ones never collide with it.
func New(st *store.Store, notifier Notifier, logger *log.Logger) *Service {
	if st == nil {
		st = store.New()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Service{store: st, notifier: notifier, log: logger, nextID: 1}
	for _, it := range st.All() {
		if it.ID >= s.nextID {
			s.nextID = it.ID + 1
		}
	}
	return s
}

// AddItem trims raw and appends a new, not-completed item. Blank input is
// rejected: the collection stays untouched, the notifier gets
// EmptyLabelNotice, and ok is false so the caller knows to keep the pending
// input around for correction.
func (s *Service) AddItem(raw string) (it model.Item, ok bool) {
	label := strings.TrimSpace(raw)
	if label == "" {
		s.notify(EmptyLabelNotice)
		return model.Item{}, false
	}

	it = model.Item{ID: s.nextID, Label: label}
	s.nextID++
	s.store.Add(it)
	s.log.Debug("item added", "id", it.ID, "label", it.Label)
	return it, true
}

// ToggleItem sets the completed flag of the item carrying id, keeping its
// position. An id that is no longer present is ignored: the screen may fire
// for an item that a just-handled action already removed.
func (s *Service) ToggleItem(id int64, completed bool) {
	it, ok := s.store.Get(id)
	if !ok {
		return
	}
	it.Completed = completed
	s.store.ReplaceByID(id, it)
	s.log.Debug("item toggled", "id", id, "completed", completed)
}

// RemoveItem deletes the item carrying id. Absent ids are ignored.
func (s *Service) RemoveItem(id int64) {
	if s.store.RemoveByID(id) {
		s.log.Debug("item removed", "id", id)
	}
}

// Items returns the whole collection in insertion order.
func (s *Service) Items() []model.Item { return s.store.All() }

// Active returns the not-yet-completed partition, in store order.
func (s *Service) Active() []model.Item { return s.store.Active() }

// Completed returns the checked-off partition, in store order.
func (s *Service) Completed() []model.Item { return s.store.Completed() }

// Len reports the collection size.
func (s *Service) Len() int { return s.store.Len() }

// Snapshot flattens the collection for the session bundle.
func (s *Service) Snapshot() []any { return snapshot.Encode(s.store.All()) }

func (s *Service) notify(text string) {
	if s.notifier != nil {
		s.notifier.Notify(text)
	}
	s.log.Debug("notice", "text", text)
}

package ui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/MoyaiAJ/ToDoApp/internal/app"
	"github.com/MoyaiAJ/ToDoApp/internal/model"
	"github.com/MoyaiAJ/ToDoApp/internal/session"
	"github.com/MoyaiAJ/ToDoApp/internal/snapshot"
	"github.com/MoyaiAJ/ToDoApp/internal/store"
)

// stateKey is the bundle slot holding the flattened collection.
const stateKey = "items"

// Options configure one interactive run.
type Options struct {
	Theme  Theme
	Seed   []string    // labels added once, on a genuinely fresh session
	Logger *log.Logger // nil discards
}

// Run owns the screen-session lifecycle. It restores the collection from the
// bundle before a session's first render, runs the program, and when the
// screen asks to be recreated it flattens the collection back into the
// bundle and loops. The final collection is returned so the caller can print
// the closing summary. Nothing survives Run itself: once it returns, the
// bundle is gone.
func Run(ctx context.Context, o Options) ([]model.Item, error) {
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	bundle := session.NewBundle()

	for {
		svc, notices, restored := newSession(bundle, o.Seed, logger)
		if restored {
			logger.Info("session restored", "items", svc.Len())
		}

		screen := New(svc, notices, o.Theme)
		program := tea.NewProgram(screen, tea.WithAltScreen(), tea.WithContext(ctx))
		finalModel, err := program.Run()
		if err != nil {
			return nil, fmt.Errorf("run screen: %w", err)
		}

		if final, ok := finalModel.(Screen); ok && final.ReloadRequested() {
			bundle.Put(stateKey, svc.Snapshot())
			logger.Info("session recreated", "items", svc.Len())
			continue
		}
		return svc.Items(), nil
	}
}

// newSession builds one session's service from whatever the bundle holds.
// Restored state is consumed: the key is deleted so a stale value can never
// leak into a later session. Seed labels apply to fresh sessions only, and
// blank ones are dropped, their notices having no screen to land on yet.
func newSession(bundle *session.Bundle, seed []string, logger *log.Logger) (*app.Service, *app.NoticeBuffer, bool) {
	flat, restored := bundle.Get(stateKey)

	var st *store.Store
	if restored {
		st = store.New(snapshot.Decode(flat)...)
		bundle.Delete(stateKey)
	} else {
		st = store.New()
	}

	notices := &app.NoticeBuffer{}
	svc := app.New(st, notices, logger)

	if !restored {
		for _, label := range seed {
			svc.AddItem(label)
		}
		notices.Drain()
	}
	return svc, notices, restored
}

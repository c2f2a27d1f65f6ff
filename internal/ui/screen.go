// Package ui renders the single to-do screen and hosts its sessions.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MoyaiAJ/ToDoApp/internal/app"
	"github.com/MoyaiAJ/ToDoApp/internal/model"
)

// Actions is everything the screen may do to the collection: the three
// mutations plus the read side. *app.Service satisfies it.
type Actions interface {
	AddItem(raw string) (model.Item, bool)
	ToggleItem(id int64, completed bool)
	RemoveItem(id int64)
	Items() []model.Item
	Active() []model.Item
	Completed() []model.Item
}

// noticeTimeout is how long a notice stays on screen.
const noticeTimeout = 3 * time.Second

// noticeExpiredMsg clears the notice line. The seq guard keeps an old timer
// from wiping a newer notice.
type noticeExpiredMsg struct {
	seq int
}

// Screen is the whole UI: an input row, the Items partition, the Completed
// Items partition, a transient notice line and a help footer. It never
// mutates items itself; every change goes through Actions and the sections
// are re-derived from the collection on every render.
type Screen struct {
	svc     Actions
	notices *app.NoticeBuffer
	theme   Theme
	keys    keymap
	help    help.Model
	input   textinput.Model

	cursor int  // index into active ++ completed
	adding bool // input row focused

	notice    string
	noticeSeq int

	reload bool // the host should tear this session down and recreate it

	width  int
	height int
}

// New builds a screen over svc. notices may be nil when no notice source is
// wired; theme decides glyphs and colors.
func New(svc Actions, notices *app.NoticeBuffer, theme Theme) Screen {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200

	h := help.New()
	h.Styles.ShortKey = theme.Help
	h.Styles.ShortDesc = theme.Help
	h.Styles.ShortSeparator = theme.Help
	h.Styles.FullKey = theme.Help
	h.Styles.FullDesc = theme.Help
	h.Styles.FullSeparator = theme.Help

	return Screen{
		svc:     svc,
		notices: notices,
		theme:   theme,
		keys:    newKeymap(),
		help:    h,
		input:   ti,
	}
}

// ReloadRequested reports whether the session ended asking to be recreated
// rather than closed for good.
func (s Screen) ReloadRequested() bool { return s.reload }

// Init implements tea.Model.
func (s Screen) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (s Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.help.Width = msg.Width
		return s, nil
	case noticeExpiredMsg:
		if msg.seq == s.noticeSeq {
			s.notice = ""
		}
		return s, nil
	}

	// input mode
	if s.adding {
		var cmd tea.Cmd
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "enter":
				_, ok := s.svc.AddItem(s.input.Value())
				if ok {
					// Stay in input mode so several items can be
					// entered back to back.
					s.input.SetValue("")
				}
				return s.flushNotices()
			case "esc":
				s.adding = false
				s.input.SetValue("")
				s.input.Blur()
				return s, nil
			}
		}
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	// list mode
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, s.keys.Quit):
			return s, tea.Quit
		case key.Matches(k, s.keys.Reload):
			s.reload = true
			return s, tea.Quit
		case key.Matches(k, s.keys.Add):
			s.adding = true
			s.input.SetValue("")
			s.input.Focus()
			return s, textinput.Blink
		case key.Matches(k, s.keys.Up):
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		case key.Matches(k, s.keys.Down):
			if s.cursor < len(s.visible())-1 {
				s.cursor++
			}
			return s, nil
		case key.Matches(k, s.keys.Toggle):
			if it, ok := s.cursorItem(); ok {
				s.svc.ToggleItem(it.ID, !it.Completed)
			}
			return s.flushNotices()
		case key.Matches(k, s.keys.Remove):
			if it, ok := s.cursorItem(); ok {
				s.svc.RemoveItem(it.ID)
				s.clampCursor()
			}
			return s.flushNotices()
		case key.Matches(k, s.keys.Help):
			s.help.ShowAll = !s.help.ShowAll
			return s, nil
		}
	}
	return s, nil
}

// visible is the sequence the cursor walks: active items first, completed
// items after, both in store order.
func (s Screen) visible() []model.Item {
	return append(s.svc.Active(), s.svc.Completed()...)
}

func (s Screen) cursorItem() (model.Item, bool) {
	vis := s.visible()
	if s.cursor < 0 || s.cursor >= len(vis) {
		return model.Item{}, false
	}
	return vis[s.cursor], true
}

func (s *Screen) clampCursor() {
	if last := len(s.visible()) - 1; s.cursor > last {
		s.cursor = last
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// flushNotices pulls anything the service tried to show and arms a timer to
// clear it again.
func (s Screen) flushNotices() (tea.Model, tea.Cmd) {
	if s.notices == nil {
		return s, nil
	}
	texts := s.notices.Drain()
	if len(texts) == 0 {
		return s, nil
	}
	s.notice = texts[len(texts)-1]
	s.noticeSeq++
	seq := s.noticeSeq
	return s, tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// View implements tea.Model.
func (s Screen) View() string {
	var b strings.Builder

	b.WriteString(s.header())
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	active := s.svc.Active()
	completed := s.svc.Completed()

	b.WriteString(s.section("Items", active, 0))
	b.WriteString("\n")
	b.WriteString(s.section("Completed Items", completed, len(active)))

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(s.theme.Error.Render(s.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.help.View(s.keys))

	panel := s.theme.Border
	if s.width > 4 {
		panel = panel.Width(s.width - 2)
	}
	return panel.Render(b.String())
}

// header shows live counts and a progress bar, like "To-Do ✔ 1 • 2 [██░░] 1/3".
func (s Screen) header() string {
	done := len(s.svc.Completed())
	total := len(s.svc.Items())
	pending := total - done

	return fmt.Sprintf("%s   %s %d  %s %d  %s %s %d/%d",
		s.theme.Title.Render("To-Do"),
		s.theme.Success.Render("✔"), done,
		s.theme.Pending.Render("•"), pending,
		s.theme.Accent.Render("Progress"),
		s.theme.progressBar(done, total, 20), done, total,
	)
}

// section renders one partition under its title. offset is where the
// partition starts in the cursor sequence.
func (s Screen) section(title string, items []model.Item, offset int) string {
	var b strings.Builder
	b.WriteString(s.theme.Accent.Render(title))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(s.theme.Muted.Render("  none"))
		b.WriteString("\n")
		return b.String()
	}

	for i, it := range items {
		b.WriteString(s.itemLine(it, offset+i == s.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (s Screen) itemLine(it model.Item, selected bool) string {
	box := s.theme.Muted.Render(s.theme.BoxUnchecked)
	label := it.Label
	if it.Completed {
		box = s.theme.Success.Render(s.theme.BoxChecked)
		label = s.theme.Done.Render(label)
	}

	prefix := "  "
	if selected && !s.adding {
		prefix = s.theme.Selected.Render("> ")
	}
	return fmt.Sprintf("%s%s %s", prefix, box, label)
}

// Package printers renders the closing summary once the screen is gone, so
// a finished session is not lost the moment the program exits.
package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/MoyaiAJ/ToDoApp/internal/model"
)

// PrettyPrint writes the two derived partitions the way the screen showed
// them. The zero value prints checkboxes and writes to color.Output.
type PrettyPrint struct {
	Out       io.Writer
	Checked   string
	Unchecked string
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) boxes() (checked, unchecked string) {
	checked, unchecked = pp.Checked, pp.Unchecked
	if checked == "" {
		checked = "☑"
	}
	if unchecked == "" {
		unchecked = "☐"
	}
	return checked, unchecked
}

// NewLine prints one.
func (pp *PrettyPrint) NewLine() {
	fmt.Fprintln(pp.out(), "")
}

// Title prints a bold, underlined section title.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Partition prints one partition as checkbox rows. An empty partition prints
// a faint none so the section is visibly empty rather than missing.
func (pp *PrettyPrint) Partition(title string, items []model.Item) {
	pp.Title(title)

	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	checked, unchecked := pp.boxes()
	tbl := uitable.New()
	tbl.Separator = " "
	for _, it := range items {
		box := unchecked
		if it.Completed {
			box = checked
		}
		tbl.AddRow(box, it.Label)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Summary prints both partitions and the completion count.
func (pp *PrettyPrint) Summary(active, completed []model.Item) {
	pp.Partition("Items", active)
	pp.Partition("Completed Items", completed)

	c := color.New(color.Faint)
	total := len(active) + len(completed)
	switch total {
	case 1:
		_, _ = c.Fprintf(pp.out(), "%d of %d item completed\n", len(completed), total)
	default:
		_, _ = c.Fprintf(pp.out(), "%d of %d items completed\n", len(completed), total)
	}
}

// Package tui is the terminal rendition of the transaction form: four text
// inputs, a read-only grid and keyboard shortcuts for the form actions.
package tui

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/mohamedlefliti/projetennaciria/internal/form"
	"github.com/mohamedlefliti/projetennaciria/internal/grid"
	"github.com/mohamedlefliti/projetennaciria/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

// focus targets: the four inputs in screen order, then the grid.
const (
	focusDescription = iota
	focusAmount
	focusCategory
	focusType
	focusGrid
	focusCount
)

var inputLabels = [...]string{"Description", "Amount", "Category", "Type"}

const helpLine = "tab focus • ↑/↓ enter select • ctrl+a add • ctrl+u update • ctrl+d delete • ctrl+e export • ctrl+l clear • esc quit"

// Model is the Bubble Tea model driving a form.Controller.
type Model struct {
	ctx context.Context
	ctl *form.Controller

	focus      int
	cursor     int
	confirming bool

	status   string
	severity form.Severity
}

// New loads the grid and returns the model. A failed load is shown on the
// status line; the form stays usable.
func New(ctx context.Context, ctl *form.Controller) *Model {
	m := &Model{ctx: ctx, ctl: ctl}
	m.report(ctl.Reload(ctx), "")
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		m.confirming = false
		confirm := form.Declined
		if s := key.String(); s == "y" || s == "Y" {
			confirm = form.Confirmed
		}
		m.report(m.ctl.Delete(m.ctx, confirm), form.MsgDeleted)
		m.clampCursor()
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % focusCount
	case "shift+tab":
		m.focus = (m.focus + focusCount - 1) % focusCount
	case "ctrl+a":
		m.report(m.ctl.Add(m.ctx), form.MsgAdded)
	case "ctrl+u":
		m.report(m.ctl.Update(m.ctx), form.MsgUpdated)
	case "ctrl+d":
		if !m.ctl.HasSelection() {
			m.report(form.ErrNoSelection, "")
			break
		}
		m.confirming = true
		m.status = form.ConfirmDeletePrompt + " (y/n)"
		m.severity = form.Warning
	case "ctrl+e":
		path, err := m.ctl.Export(m.ctx)
		m.report(err, form.MsgExported(path))
	case "ctrl+l":
		m.ctl.Clear()
		m.report(nil, form.MsgCleared)
	default:
		if m.focus == focusGrid {
			m.gridKey(key)
		} else {
			m.inputKey(key)
		}
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) gridKey(key tea.KeyMsg) {
	switch key.String() {
	case "up", "k":
		m.cursor--
	case "down", "j":
		m.cursor++
	case "enter", " ":
		_, err := m.ctl.Select(m.cursor)
		m.report(err, "")
	}
}

func (m *Model) inputKey(key tea.KeyMsg) {
	f := m.ctl.Fields()
	v := field(&f, m.focus)

	switch key.Type {
	case tea.KeyRunes:
		*v += string(key.Runes)
	case tea.KeySpace:
		*v += " "
	case tea.KeyBackspace:
		if r := []rune(*v); len(r) > 0 {
			*v = string(r[:len(r)-1])
		}
	case tea.KeyEnter:
		m.focus = (m.focus + 1) % focusCount
		return
	default:
		return
	}
	m.ctl.SetFields(f)
}

func field(f *form.Fields, focus int) *string {
	switch focus {
	case focusAmount:
		return &f.Amount
	case focusCategory:
		return &f.Category
	case focusType:
		return &f.Type
	default:
		return &f.Description
	}
}

func (m *Model) clampCursor() {
	n := len(m.ctl.Snapshot().Rows)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// report sets the status line from an action result.
func (m *Model) report(err error, okMsg string) {
	m.severity = form.Classify(err)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = okMsg
}

func (m *Model) View() string {
	snap := m.ctl.Snapshot()
	var b strings.Builder

	b.WriteString("Financial Management\n\n")

	for i, label := range inputLabels {
		marker := "  "
		if m.focus == i {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%-12s [%s]\n", marker, label+":", *field(&snap.Fields, i))
	}
	b.WriteString("\n")

	writeGrid(&b, snap, m.cursor, m.focus == focusGrid)

	b.WriteString("\n")
	if m.status != "" {
		fmt.Fprintf(&b, "[%s] %s\n", m.severity, m.status)
	}
	b.WriteString(helpLine + "\n")
	return b.String()
}

func writeGrid(b *strings.Builder, snap form.Snapshot, cursor int, focused bool) {
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "   \t%s\n", strings.Join(models.Columns, "\t"))
	for i, r := range snap.Rows {
		marker := "  "
		if i == snap.Selected {
			marker = " *"
		}
		if focused && i == cursor {
			marker = ">" + marker[1:]
		}
		fmt.Fprintf(tw, "%s\t%s\n", marker, strings.Join(grid.Cells(r), "\t"))
	}
	if len(snap.Rows) == 0 {
		fmt.Fprintln(tw, "   \t(no transactions)")
	}
	_ = tw.Flush()
}

// Package grid holds the in-memory mirror of the transactions table as it
// is shown to the user, plus the single selected row.
package grid

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mohamedlefliti/projetennaciria/internal/models"
)

// NoSelection is the selected index when no row is selected.
const NoSelection = -1

var ErrOutOfRange = errors.New("row index out of range")

// State is the last loaded snapshot. It is not safe for concurrent use;
// the owner serialises access.
type State struct {
	rows     []models.Transaction
	selected int
}

func New() *State {
	return &State{selected: NoSelection}
}

// Load replaces the snapshot wholesale and drops the selection.
func (s *State) Load(rows []models.Transaction) {
	s.rows = append(s.rows[:0:0], rows...)
	s.selected = NoSelection
}

func (s *State) Len() int { return len(s.rows) }

// Rows returns a copy of the snapshot.
func (s *State) Rows() []models.Transaction {
	return append([]models.Transaction(nil), s.rows...)
}

// Select marks row i as selected and returns it. An index outside the
// displayed rows leaves the current selection as it was.
func (s *State) Select(i int) (models.Transaction, error) {
	if i < 0 || i >= len(s.rows) {
		return models.Transaction{}, fmt.Errorf("select row %d of %d: %w", i, len(s.rows), ErrOutOfRange)
	}
	s.selected = i
	return s.rows[i], nil
}

func (s *State) Unselect() { s.selected = NoSelection }

func (s *State) SelectedIndex() int { return s.selected }

// Selected returns the selected row, or false when nothing is selected.
func (s *State) Selected() (models.Transaction, bool) {
	if s.selected == NoSelection {
		return models.Transaction{}, false
	}
	return s.rows[s.selected], true
}

// Cells renders the snapshot as display text, one slice per row, in
// models.Columns order.
func (s *State) Cells() [][]string {
	out := make([][]string, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, Cells(r))
	}
	return out
}

// Cells renders one transaction in models.Columns order.
func Cells(r models.Transaction) []string {
	return []string{
		strconv.FormatUint(uint64(r.ID), 10),
		r.Date,
		r.Description,
		FormatAmount(r.Amount),
		r.Type,
		r.Category,
	}
}

// FormatAmount renders an amount in its shortest exact form (39.99, 1000).
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package grid

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mohamedlefliti/projetennaciria/internal/models"
)

func sampleRows() []models.Transaction {
	return []models.Transaction{
		{ID: 1, Date: "2024-03-09", Description: "Book purchase", Amount: 49.99, Type: "Expense", Category: "Supplies"},
		{ID: 3, Date: "2024-03-10", Description: "Tuition", Amount: 1500, Type: "Income", Category: "Fees"},
	}
}

func TestNew_NoSelection(t *testing.T) {
	s := New()
	if s.SelectedIndex() != NoSelection {
		t.Errorf("SelectedIndex() = %d, want NoSelection", s.SelectedIndex())
	}
	if _, ok := s.Selected(); ok {
		t.Error("Selected() ok = true on empty state")
	}
}

func TestSelect(t *testing.T) {
	s := New()
	s.Load(sampleRows())

	row, err := s.Select(1)
	if err != nil {
		t.Fatalf("Select(1) error = %v", err)
	}
	if row.ID != 3 {
		t.Errorf("Select(1).ID = %d, want 3", row.ID)
	}
	got, ok := s.Selected()
	if !ok || got.ID != 3 {
		t.Errorf("Selected() = %+v, %v", got, ok)
	}
}

func TestSelect_OutOfRangeKeepsSelection(t *testing.T) {
	s := New()
	s.Load(sampleRows())
	if _, err := s.Select(0); err != nil {
		t.Fatal(err)
	}

	for _, i := range []int{-1, 2, 99} {
		if _, err := s.Select(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Select(%d) error = %v, want ErrOutOfRange", i, err)
		}
	}
	if s.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex() = %d, want 0", s.SelectedIndex())
	}
}

func TestLoad_ResetsSelection(t *testing.T) {
	s := New()
	s.Load(sampleRows())
	if _, err := s.Select(1); err != nil {
		t.Fatal(err)
	}

	s.Load(sampleRows()[:1])

	if s.SelectedIndex() != NoSelection {
		t.Errorf("SelectedIndex() after Load = %d, want NoSelection", s.SelectedIndex())
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestLoad_CopiesInput(t *testing.T) {
	rows := sampleRows()
	s := New()
	s.Load(rows)

	rows[0].Description = "changed"
	if s.Rows()[0].Description != "Book purchase" {
		t.Error("snapshot aliases the caller's slice")
	}

	out := s.Rows()
	out[0].Description = "changed"
	if s.Rows()[0].Description != "Book purchase" {
		t.Error("Rows() exposes the internal slice")
	}
}

func TestUnselect(t *testing.T) {
	s := New()
	s.Load(sampleRows())
	_, _ = s.Select(0)
	s.Unselect()
	if _, ok := s.Selected(); ok {
		t.Error("Selected() ok = true after Unselect")
	}
}

func TestCells(t *testing.T) {
	s := New()
	s.Load(sampleRows())

	want := [][]string{
		{"1", "2024-03-09", "Book purchase", "49.99", "Expense", "Supplies"},
		{"3", "2024-03-10", "Tuition", "1500", "Income", "Fees"},
	}
	if got := s.Cells(); !reflect.DeepEqual(got, want) {
		t.Errorf("Cells() = %v, want %v", got, want)
	}
	if len(want[0]) != len(models.Columns) {
		t.Errorf("cells per row = %d, columns = %d", len(want[0]), len(models.Columns))
	}
}

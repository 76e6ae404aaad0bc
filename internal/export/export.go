// Package export writes the transactions table to spreadsheet files.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mohamedlefliti/projetennaciria/internal/grid"
	"github.com/mohamedlefliti/projetennaciria/internal/models"

	"github.com/xuri/excelize/v2"
)

const DefaultSheet = "Transactions"

// Lister is the read side of the transaction repository.
type Lister interface {
	ListAll(ctx context.Context) ([]models.Transaction, error)
}

// Exporter dumps every stored transaction to a workbook at a fixed path.
type Exporter struct {
	store Lister
	path  string
	sheet string
}

func New(store Lister, path, sheet string) *Exporter {
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &Exporter{store: store, path: path, sheet: sheet}
}

func (e *Exporter) Path() string { return e.path }

// Export reads all rows from the store and overwrites the workbook at the
// configured path. It returns that path.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	rows, err := e.store.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("read transactions: %w", err)
	}

	f, err := buildWorkbook(e.sheet, rows)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if dir := filepath.Dir(e.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := f.SaveAs(e.path); err != nil {
		return "", fmt.Errorf("save workbook %s: %w", e.path, err)
	}
	return e.path, nil
}

// WriteXLSX streams rows as an xlsx workbook with a single sheet.
func WriteXLSX(w io.Writer, sheet string, rows []models.Transaction) error {
	if sheet == "" {
		sheet = DefaultSheet
	}
	f, err := buildWorkbook(sheet, rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteCSV streams rows as CSV with the same header as the workbook.
func WriteCSV(w io.Writer, rows []models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(grid.Cells(r)); err != nil {
			return fmt.Errorf("write csv row %d: %w", r.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func buildWorkbook(sheet string, rows []models.Transaction) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	header := make([]interface{}, len(models.Columns))
	for i, c := range models.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		values := []interface{}{r.ID, r.Date, r.Description, r.Amount, r.Type, r.Category}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", r.ID, err)
		}
	}

	// column widths
	_ = f.SetColWidth(sheet, "A", "B", 12)
	_ = f.SetColWidth(sheet, "C", "C", 30)
	_ = f.SetColWidth(sheet, "D", "F", 14)

	return f, nil
}

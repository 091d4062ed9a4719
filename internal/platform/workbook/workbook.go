// Package workbook provides scoped access to the Excel file that backs the
// application. The workbook holds two sheets: Records (one row per sales
// order record) and Data (the SalesMan to Region mapping).
package workbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"
)

const (
	// RecordsSheet stores one row per sales order record.
	RecordsSheet = "Records"
	// DataSheet stores the SalesMan/Region mapping.
	DataSheet = "Data"
)

// RecordColumns is the header row of the Records sheet. The column titles
// match the workbook the business already uses, so the file stays readable
// in Excel. "Defination" is the historical spelling carried in that file.
var RecordColumns = []string{
	"record_id",
	"Date of Request",
	"SalesMan",
	"Region",
	"Customer Name",
	"Customer PO No",
	"SalesForce Reference",
	"SO No",
	"Amount (EUR)",
	"Total Discount (%)",
	"CPI (EUR)",
	"CPS (EUR)",
	"Defination",
	"Date of Delivery",
	"Date of Invoice",
	"Note",
	"created_at",
	"updated_at",
}

// DataColumns is the header row of the Data sheet.
var DataColumns = []string{"SalesMan", "Region"}

// ErrBusy reports that the workbook file could not be opened or saved,
// typically because another process has it open. Callers may retry.
var ErrBusy = errors.New("workbook busy")

var sheetHeaders = map[string][]string{
	RecordsSheet: RecordColumns,
	DataSheet:    DataColumns,
}

// Store reads and writes the workbook file. Every write replaces the whole
// sheet and saves the file. A mutex serialises access within this process;
// writers in other processes are not coordinated.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open returns a Store for the workbook at path, creating the file and any
// missing sheet on first use.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("workbook: path must be provided")
	}
	s := &Store{path: path}
	if err := s.ensure(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the workbook file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) ensure() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return s.bootstrap()
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("workbook: open %s: %w", s.path, ErrBusy)
	}
	defer f.Close()

	changed := false
	for sheet, header := range sheetHeaders {
		idx, err := f.GetSheetIndex(sheet)
		if err != nil {
			return fmt.Errorf("workbook: inspect sheet %s: %w", sheet, err)
		}
		if idx >= 0 {
			continue
		}
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("workbook: create sheet %s: %w", sheet, err)
		}
		if err := writeHeader(f, sheet, header); err != nil {
			return err
		}
		changed = true
	}
	if !changed {
		return nil
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("workbook: save %s: %w", s.path, ErrBusy)
	}
	return nil
}

func (s *Store) bootstrap() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("workbook: create directory %s: %w", dir, err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	for sheet, header := range sheetHeaders {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("workbook: create sheet %s: %w", sheet, err)
		}
		if err := writeHeader(f, sheet, header); err != nil {
			return err
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("workbook: drop default sheet: %w", err)
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("workbook: save %s: %w", s.path, ErrBusy)
	}
	return nil
}

// Rows returns the data rows of a sheet, header excluded. Rows shorter than
// the header come back as excelize read them; callers pad as needed.
func (s *Store) Rows(sheet string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("workbook: open %s: %w", s.path, ErrBusy)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("workbook: read sheet %s: %w", sheet, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

// Update runs fn against the current data rows of a sheet and persists the
// result, replacing the sheet contents wholesale. The whole read-modify-write
// happens under the store lock.
func (s *Store) Update(sheet string, fn func(rows [][]string) ([][]string, error)) error {
	header, ok := sheetHeaders[sheet]
	if !ok {
		return fmt.Errorf("workbook: unknown sheet %s", sheet)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("workbook: open %s: %w", s.path, ErrBusy)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("workbook: read sheet %s: %w", sheet, err)
	}
	var data [][]string
	if len(rows) > 1 {
		data = rows[1:]
	}

	out, err := fn(data)
	if err != nil {
		return err
	}

	if err := f.DeleteSheet(sheet); err != nil {
		return fmt.Errorf("workbook: reset sheet %s: %w", sheet, err)
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("workbook: create sheet %s: %w", sheet, err)
	}
	if err := writeHeader(f, sheet, header); err != nil {
		return err
	}
	for i, row := range out {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, toCells(row)); err != nil {
			return fmt.Errorf("workbook: write row %d of %s: %w", i+2, sheet, err)
		}
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("workbook: save %s: %w", s.path, ErrBusy)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, header []string) error {
	if err := f.SetSheetRow(sheet, "A1", toCells(header)); err != nil {
		return fmt.Errorf("workbook: write header of %s: %w", sheet, err)
	}
	return nil
}

func toCells(row []string) *[]interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return &cells
}

package salesmen

import (
	"context"
	"fmt"
	"strings"

	"github.com/ordertrack/ordertrack/internal/platform/workbook"
)

// Repository persists the SalesMan/Region mapping held in the Data sheet.
type Repository interface {
	List(ctx context.Context) ([]Salesman, error)
	Upsert(ctx context.Context, s Salesman) error
	ReplaceAll(ctx context.Context, items []Salesman) error
}

type repository struct {
	store *workbook.Store
}

// NewRepository returns a Repository backed by the Data sheet.
func NewRepository(store *workbook.Store) Repository {
	return &repository{store: store}
}

const (
	colName = iota
	colRegion
)

func (r *repository) List(ctx context.Context) ([]Salesman, error) {
	rows, err := r.store.Rows(workbook.DataSheet)
	if err != nil {
		return nil, fmt.Errorf("salesmen: list: %w", err)
	}
	items := make([]Salesman, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToSalesman(row))
	}
	return items, nil
}

// Upsert matches names case-insensitively so re-entering a salesman with
// different casing updates the existing row instead of adding one.
func (r *repository) Upsert(ctx context.Context, s Salesman) error {
	err := r.store.Update(workbook.DataSheet, func(rows [][]string) ([][]string, error) {
		for i, row := range rows {
			if strings.EqualFold(strings.TrimSpace(cellAt(row, colName)), s.Name) {
				rows[i] = salesmanToRow(Salesman{Name: cellAt(row, colName), Region: s.Region})
				return rows, nil
			}
		}
		return append(rows, salesmanToRow(s)), nil
	})
	if err != nil {
		return fmt.Errorf("salesmen: upsert %s: %w", s.Name, err)
	}
	return nil
}

func (r *repository) ReplaceAll(ctx context.Context, items []Salesman) error {
	err := r.store.Update(workbook.DataSheet, func(_ [][]string) ([][]string, error) {
		rows := make([][]string, 0, len(items))
		for _, s := range items {
			rows = append(rows, salesmanToRow(s))
		}
		return rows, nil
	})
	if err != nil {
		return fmt.Errorf("salesmen: replace all: %w", err)
	}
	return nil
}

func rowToSalesman(row []string) Salesman {
	region := Region(cellAt(row, colRegion))
	if region == "" {
		region = RegionUnassigned
	}
	return Salesman{Name: cellAt(row, colName), Region: region}
}

func salesmanToRow(s Salesman) []string {
	return []string{s.Name, string(s.Region)}
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/ordertrack/ordertrack/internal/platform/httpx"
	"github.com/ordertrack/ordertrack/internal/platform/workbook"
)

// Repository persists sales order records. Records are appended and updated
// in place; the application never deletes them.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	Find(ctx context.Context, soNo, customerPONo string) (Record, error)
	Create(ctx context.Context, rec Record) error
	Update(ctx context.Context, rec Record) error
}

type repository struct {
	store *workbook.Store
}

// NewRepository returns a Repository backed by the Records sheet.
func NewRepository(store *workbook.Store) Repository {
	return &repository{store: store}
}

func (r *repository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.store.Rows(workbook.RecordsSheet)
	if err != nil {
		return nil, fmt.Errorf("orders: list: %w", err)
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, rowToRecord(row))
	}
	return records, nil
}

func (r *repository) Get(ctx context.Context, id string) (Record, error) {
	records, err := r.List(ctx)
	if err != nil {
		return Record{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Record{}, fmt.Errorf("orders: record %s: %w", id, httpx.ErrNotFound)
}

// Find matches case-insensitively on SO No first, then Customer PO No. The
// sheet is not deduplicated, so the first matching row wins.
func (r *repository) Find(ctx context.Context, soNo, customerPONo string) (Record, error) {
	records, err := r.List(ctx)
	if err != nil {
		return Record{}, err
	}
	if soNo = strings.TrimSpace(soNo); soNo != "" {
		for _, rec := range records {
			if strings.EqualFold(rec.SONo, soNo) {
				return rec, nil
			}
		}
		return Record{}, fmt.Errorf("orders: so no %s: %w", soNo, httpx.ErrNotFound)
	}
	if customerPONo = strings.TrimSpace(customerPONo); customerPONo != "" {
		for _, rec := range records {
			if strings.EqualFold(rec.CustomerPONo, customerPONo) {
				return rec, nil
			}
		}
		return Record{}, fmt.Errorf("orders: customer po no %s: %w", customerPONo, httpx.ErrNotFound)
	}
	return Record{}, fmt.Errorf("orders: lookup needs so_no or customer_po_no: %w", httpx.ErrValidation)
}

func (r *repository) Create(ctx context.Context, rec Record) error {
	err := r.store.Update(workbook.RecordsSheet, func(rows [][]string) ([][]string, error) {
		return append(rows, recordToRow(rec)), nil
	})
	if err != nil {
		return fmt.Errorf("orders: create %s: %w", rec.ID, err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, rec Record) error {
	err := r.store.Update(workbook.RecordsSheet, func(rows [][]string) ([][]string, error) {
		for i, row := range rows {
			if cell(row, colID) == rec.ID {
				rows[i] = recordToRow(rec)
				return rows, nil
			}
		}
		return nil, fmt.Errorf("orders: record %s: %w", rec.ID, httpx.ErrNotFound)
	})
	if err != nil {
		return err
	}
	return nil
}

package orders

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordertrack/ordertrack/internal/platform/httpx"
	"github.com/ordertrack/ordertrack/internal/platform/workbook"
)

func newTestRepository(t *testing.T) Repository {
	t.Helper()
	store, err := workbook.Open(filepath.Join(t.TempDir(), "order-track.xlsx"))
	require.NoError(t, err)
	return NewRepository(store)
}

func sampleRecord(id, soNo string) Record {
	invoice := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return Record{
		ID:             id,
		DateOfRequest:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		SalesMan:       "Ali",
		Region:         "CPI Northern",
		CustomerName:   "Acme Tooling",
		CustomerPONo:   "PO-1001",
		SalesforceRef:  "SF-77",
		SONo:           soNo,
		Amount:         1500,
		TotalDiscount:  5,
		CPI:            1100,
		CPS:            400,
		Definition:     "spare parts",
		DateOfInvoice:  &invoice,
		Note:           "rush order",
		CreatedAt:      time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
	}
}

func TestRepositoryCreateAndList(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	rec := sampleRecord("id-1", "SO-2001")
	require.NoError(t, repo.Create(ctx, rec))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.SalesMan, got.SalesMan)
	assert.Equal(t, rec.Region, got.Region)
	assert.Equal(t, rec.SONo, got.SONo)
	assert.InDelta(t, rec.Amount, got.Amount, 0.001)
	assert.InDelta(t, rec.CPI, got.CPI, 0.001)
	assert.InDelta(t, rec.CPS, got.CPS, 0.001)
	assert.Equal(t, rec.Definition, got.Definition)
	assert.Equal(t, rec.Note, got.Note)
	require.NotNil(t, got.DateOfInvoice)
	assert.True(t, got.DateOfInvoice.Equal(*rec.DateOfInvoice))
	assert.Nil(t, got.DateOfDelivery)
	assert.True(t, got.CreatedAt.Equal(rec.CreatedAt))
}

func TestRepositoryGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleRecord("id-1", "SO-2001")))
	require.NoError(t, repo.Create(ctx, sampleRecord("id-2", "SO-2002")))

	got, err := repo.Get(ctx, "id-2")
	require.NoError(t, err)
	assert.Equal(t, "SO-2002", got.SONo)

	_, err = repo.Get(ctx, "id-9")
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestRepositoryFindPrecedence(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := sampleRecord("id-1", "SO-2001")
	second := sampleRecord("id-2", "SO-2002")
	second.CustomerPONo = "PO-2002"
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	// SO No wins even when the PO No would match another record.
	got, err := repo.Find(ctx, "so-2002", "PO-1001")
	require.NoError(t, err)
	assert.Equal(t, "id-2", got.ID)

	got, err = repo.Find(ctx, "", "po-2002")
	require.NoError(t, err)
	assert.Equal(t, "id-2", got.ID)
}

func TestRepositoryFindFirstRowWinsOnDuplicates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleRecord("id-1", "SO-2001")))
	require.NoError(t, repo.Create(ctx, sampleRecord("id-2", "SO-2001")))

	got, err := repo.Find(ctx, "SO-2001", "")
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
}

func TestRepositoryUpdateRewritesRowInPlace(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleRecord("id-1", "SO-2001")))
	require.NoError(t, repo.Create(ctx, sampleRecord("id-2", "SO-2002")))

	changed := sampleRecord("id-1", "SO-2001")
	changed.Amount = 9000
	changed.CPI = 8600
	changed.Note = "amended"
	require.NoError(t, repo.Update(ctx, changed))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "id-1", records[0].ID)
	assert.InDelta(t, 9000.0, records[0].Amount, 0.001)
	assert.Equal(t, "amended", records[0].Note)
	assert.InDelta(t, 1500.0, records[1].Amount, 0.001, "other rows untouched")
}

func TestRepositoryUpdateUnknownID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	err := repo.Update(ctx, sampleRecord("id-9", "SO-2009"))
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrNotFound)
}

package salesmen

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordertrack/ordertrack/internal/platform/httpx"
)

type mockRepository struct {
	items []Salesman
}

func (m *mockRepository) List(ctx context.Context) ([]Salesman, error) {
	return append([]Salesman(nil), m.items...), nil
}

func (m *mockRepository) Upsert(ctx context.Context, s Salesman) error {
	for i, existing := range m.items {
		if strings.EqualFold(existing.Name, s.Name) {
			m.items[i].Region = s.Region
			return nil
		}
	}
	m.items = append(m.items, s)
	return nil
}

func (m *mockRepository) ReplaceAll(ctx context.Context, items []Salesman) error {
	m.items = append([]Salesman(nil), items...)
	return nil
}

func newTestService() (*Service, *mockRepository) {
	repo := &mockRepository{}
	return NewService(repo), repo
}

func TestUpsertAddsSalesman(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	saved, err := svc.Upsert(ctx, Salesman{Name: "Ali", Region: RegionNorthern})
	require.NoError(t, err)
	assert.Equal(t, RegionNorthern, saved.Region)
	require.Len(t, repo.items, 1)
}

func TestUpsertReassignsExistingCaseInsensitive(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, Salesman{Name: "Ali", Region: RegionNorthern})
	require.NoError(t, err)

	_, err = svc.Upsert(ctx, Salesman{Name: "ALI", Region: RegionSouthern})
	require.NoError(t, err)

	require.Len(t, repo.items, 1, "same name must not duplicate")
	assert.Equal(t, RegionSouthern, repo.items[0].Region)
}

func TestUpsertDefaultsToUnassigned(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	saved, err := svc.Upsert(ctx, Salesman{Name: "Veli"})
	require.NoError(t, err)
	assert.Equal(t, RegionUnassigned, saved.Region)
}

func TestUpsertRejectsEmptyName(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, Salesman{Name: "   ", Region: RegionNorthern})
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrValidation)
}

func TestUpsertRejectsUnknownRegion(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, Salesman{Name: "Ali", Region: Region("Western")})
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrValidation)
}

func TestBulkSetReplacesMapping(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, Salesman{Name: "Old", Region: RegionNorthern})
	require.NoError(t, err)

	saved, err := svc.BulkSet(ctx, []Salesman{
		{Name: "Ali", Region: RegionNorthern},
		{Name: "Can"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, RegionUnassigned, saved[1].Region)

	require.Len(t, repo.items, 2)
	assert.Equal(t, "Ali", repo.items[0].Name)
}

func TestBulkSetRejectsInvalidEntry(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.BulkSet(ctx, []Salesman{
		{Name: "Ali", Region: RegionNorthern},
		{Name: "", Region: RegionSouthern},
	})
	require.Error(t, err)
	assert.Empty(t, repo.items, "invalid lists must not be applied")
}

func TestRegionFor(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, Salesman{Name: "Ali", Region: RegionNorthern})
	require.NoError(t, err)

	region, err := svc.RegionFor(ctx, "  ali ")
	require.NoError(t, err)
	assert.Equal(t, "CPI Northern", region)

	region, err = svc.RegionFor(ctx, "Unknown")
	require.NoError(t, err)
	assert.Equal(t, "Unassigned", region)
}

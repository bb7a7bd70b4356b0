package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/rookgm/bobis/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(orderID int64, at time.Time) *models.DispatchRecord {
	return &models.DispatchRecord{
		ID:          uuid.New(),
		OrderID:     orderID,
		Requester:   "Ana",
		ConfirmedBy: "Luis",
		ConfirmedAt: at,
		TotalWeight: decimal.RequireFromString("2420.35"),
		Coils: []models.ChecklistEntry{
			{CoilID: 10, Heat: "COL001", Weight: decimal.RequireFromString("2420.35"), Verified: true},
		},
	}
}

func TestMemoryJournal_Save(t *testing.T) {
	ctx := context.Background()
	j := NewMemoryJournal()
	at := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)

	rec := testRecord(1, at)
	require.NoError(t, j.Save(ctx, rec))

	// second dispatch of same order
	err := j.Save(ctx, testRecord(1, at))
	assert.ErrorIs(t, err, models.ErrConflictData)

	got, err := j.ByOrder(ctx, 1)
	require.NoError(t, err)
	if diff := cmp.Diff(rec, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// stored copy is independent of caller
	rec.Coils[0].Heat = "changed"
	got, err = j.ByOrder(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "COL001", got.Coils[0].Heat)

	_, err = j.ByOrder(ctx, 2)
	assert.ErrorIs(t, err, models.ErrDataNotFound)
}

func TestMemoryJournal_Recent(t *testing.T) {
	ctx := context.Background()
	j := NewMemoryJournal()
	base := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)

	for i := int64(1); i <= 4; i++ {
		require.NoError(t, j.Save(ctx, testRecord(i, base.Add(time.Duration(i)*time.Hour))))
	}

	tests := []struct {
		name  string
		limit int
		want  []int64
	}{
		{name: "newest_first", limit: 2, want: []int64{4, 3}},
		{name: "limit_above_size", limit: 10, want: []int64{4, 3, 2, 1}},
		{name: "zero_limit", limit: 0, want: []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := j.Recent(ctx, tt.limit)
			require.NoError(t, err)

			got := []int64{}
			for _, r := range recs {
				got = append(got, r.OrderID)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMemoryJournal_ByOrders(t *testing.T) {
	ctx := context.Background()
	j := NewMemoryJournal()
	at := time.Now()

	require.NoError(t, j.Save(ctx, testRecord(1, at)))
	require.NoError(t, j.Save(ctx, testRecord(3, at)))

	got, err := j.ByOrders(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Contains(t, got, int64(1))
	assert.Contains(t, got, int64(3))
	assert.NotContains(t, got, int64(2))
}

package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/rookgm/bobis/internal/models"
)

// MemoryJournal keeps confirmed dispatches in process memory.
// It is used when no database is configured.
type MemoryJournal struct {
	mu      sync.RWMutex
	records map[int64]models.DispatchRecord
}

// NewMemoryJournal creates empty MemoryJournal
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{records: make(map[int64]models.DispatchRecord)}
}

// Save stores dispatch. It returns models.ErrConflictData when order is
// already dispatched.
func (mj *MemoryJournal) Save(_ context.Context, rec *models.DispatchRecord) error {
	mj.mu.Lock()
	defer mj.mu.Unlock()

	if _, ok := mj.records[rec.OrderID]; ok {
		return models.ErrConflictData
	}
	mj.records[rec.OrderID] = cloneRecord(*rec)
	return nil
}

// ByOrder returns dispatch of order
func (mj *MemoryJournal) ByOrder(_ context.Context, orderID int64) (*models.DispatchRecord, error) {
	mj.mu.RLock()
	defer mj.mu.RUnlock()

	rec, ok := mj.records[orderID]
	if !ok {
		return nil, models.ErrDataNotFound
	}
	out := cloneRecord(rec)
	return &out, nil
}

// ByOrders returns dispatches of orders keyed by order id
func (mj *MemoryJournal) ByOrders(_ context.Context, orderIDs []int64) (map[int64]models.DispatchRecord, error) {
	mj.mu.RLock()
	defer mj.mu.RUnlock()

	out := make(map[int64]models.DispatchRecord)
	for _, id := range orderIDs {
		if rec, ok := mj.records[id]; ok {
			out[id] = cloneRecord(rec)
		}
	}
	return out, nil
}

// Recent returns latest dispatches, newest first
func (mj *MemoryJournal) Recent(_ context.Context, limit int) ([]models.DispatchRecord, error) {
	mj.mu.RLock()
	defer mj.mu.RUnlock()

	recs := make([]models.DispatchRecord, 0, len(mj.records))
	for _, rec := range mj.records {
		recs = append(recs, cloneRecord(rec))
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].ConfirmedAt.Equal(recs[j].ConfirmedAt) {
			return recs[i].ConfirmedAt.After(recs[j].ConfirmedAt)
		}
		return recs[i].OrderID > recs[j].OrderID
	})

	if limit < 0 {
		limit = 0
	}
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func cloneRecord(rec models.DispatchRecord) models.DispatchRecord {
	c := rec
	c.Coils = append([]models.ChecklistEntry{}, rec.Coils...)
	return c
}

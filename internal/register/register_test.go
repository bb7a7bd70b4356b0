package register

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rookgm/bobis/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pending(id int64, coils ...int64) models.PendingOrder {
	o := models.PendingOrder{ID: id, Status: models.OrderStatusSent, Requester: "Ana"}
	for _, c := range coils {
		o.Coils = append(o.Coils, models.ChecklistEntry{CoilID: c, Weight: decimal.NewFromInt(1000)})
	}
	return o
}

func ids(orders []models.PendingOrder) []int64 {
	out := []int64{}
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestRegister_SubscribeReceivesCurrentThenUpdates(t *testing.T) {
	r := New()
	r.Register(pending(1, 10))

	var got [][]int64
	cancel := r.Subscribe(func(orders []models.PendingOrder) {
		got = append(got, ids(orders))
	})
	defer cancel()

	r.Register(pending(2, 20))
	r.Complete(1)

	want := [][]int64{{1}, {1, 2}, {2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRegister_Complete(t *testing.T) {
	tests := []struct {
		name     string
		orders   []models.PendingOrder
		complete int64
		wantOK   bool
		wantIDs  []int64
	}{
		{
			name:     "removes_existing",
			orders:   []models.PendingOrder{pending(1), pending(2), pending(3)},
			complete: 2,
			wantOK:   true,
			wantIDs:  []int64{1, 3},
		},
		{
			name:     "unknown_id_is_noop",
			orders:   []models.PendingOrder{pending(1)},
			complete: 9,
			wantOK:   false,
			wantIDs:  []int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			for _, o := range tt.orders {
				r.Register(o)
			}

			ok := r.Complete(tt.complete)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantIDs, ids(r.Snapshot()))

			_, found := r.Get(tt.complete)
			assert.False(t, found && tt.wantOK)
		})
	}
}

func TestRegister_LateSubscriberSeesOnlyPostMutationState(t *testing.T) {
	r := New()
	r.Register(pending(1))
	r.Complete(1)

	var got []int64
	cancel := r.Subscribe(func(orders []models.PendingOrder) {
		got = ids(orders)
	})
	defer cancel()

	assert.Empty(t, got)
}

func TestRegister_SnapshotIsCopy(t *testing.T) {
	r := New()
	r.Register(pending(1, 10, 11))

	snap := r.Snapshot()
	snap[0].Coils[0].Verified = true
	snap[0].Requester = "changed"

	o, ok := r.Get(1)
	require.True(t, ok)
	assert.False(t, o.Coils[0].Verified)
	assert.Equal(t, "Ana", o.Requester)
}

func TestRegister_Cancel(t *testing.T) {
	r := New()

	calls := 0
	cancel := r.Subscribe(func([]models.PendingOrder) { calls++ })
	cancel()

	r.Register(pending(1))
	assert.Equal(t, 1, calls)
}

func TestRegister_SubscribersObserveSameSequence(t *testing.T) {
	r := New()

	var mu sync.Mutex
	seqA, seqB := []int{}, []int{}
	r.Subscribe(func(o []models.PendingOrder) { mu.Lock(); seqA = append(seqA, len(o)); mu.Unlock() })
	r.Subscribe(func(o []models.PendingOrder) { mu.Lock(); seqB = append(seqB, len(o)); mu.Unlock() })

	var wg sync.WaitGroup
	for i := int64(1); i <= 20; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			r.Register(pending(id))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, seqA, seqB)
	assert.Equal(t, 20, r.Len())
}

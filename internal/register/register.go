// Package register holds submitted orders awaiting dispatch confirmation.
//
// The register is shared by everything that produces or consumes pending
// orders. Every mutation is broadcast synchronously to all subscribers,
// in mutation order, while the register lock is held. Subscribers must
// not call back into the register.
package register

import (
	"sync"

	"github.com/rookgm/bobis/internal/logger"
	"github.com/rookgm/bobis/internal/models"
	"go.uber.org/zap"
)

// Subscriber receives full snapshot after every mutation
type Subscriber func(orders []models.PendingOrder)

// Register is in-memory list of pending orders
type Register struct {
	mu     sync.Mutex
	orders []models.PendingOrder
	subs   map[uint64]Subscriber
	nextID uint64
}

// New creates empty Register
func New() *Register {
	return &Register{
		orders: []models.PendingOrder{},
		subs:   make(map[uint64]Subscriber),
	}
}

// Register appends order and broadcasts new snapshot
func (r *Register) Register(order models.PendingOrder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order.Clone())

	logger.Log.Debug("pending order registered",
		zap.Int64("order", order.ID),
		zap.Int("coils", len(order.Coils)),
		zap.Int("pending", len(r.orders)))

	r.broadcast()
}

// Complete removes order by id and broadcasts new snapshot.
// It returns false when order is not pending.
func (r *Register) Complete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, o := range r.orders {
		if o.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	orders := make([]models.PendingOrder, 0, len(r.orders)-1)
	orders = append(orders, r.orders[:idx]...)
	orders = append(orders, r.orders[idx+1:]...)
	r.orders = orders

	logger.Log.Debug("pending order completed", zap.Int64("order", id), zap.Int("pending", len(r.orders)))

	r.broadcast()
	return true
}

// Snapshot returns copy of pending orders
func (r *Register) Snapshot() []models.PendingOrder {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshot()
}

// Get returns copy of pending order by id
func (r *Register) Get(id int64) (models.PendingOrder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return models.PendingOrder{}, false
}

// Len returns number of pending orders
func (r *Register) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.orders)
}

// Subscribe delivers current snapshot to fn immediately and then every
// subsequent snapshot. The returned function cancels subscription.
func (r *Register) Subscribe(fn Subscriber) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.subs[id] = fn

	fn(r.snapshot())

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

func (r *Register) snapshot() []models.PendingOrder {
	out := make([]models.PendingOrder, len(r.orders))
	for i, o := range r.orders {
		out[i] = o.Clone()
	}
	return out
}

// broadcast must be called with lock held
func (r *Register) broadcast() {
	for _, fn := range r.subs {
		fn(r.snapshot())
	}
}

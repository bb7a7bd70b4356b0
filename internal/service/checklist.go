package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rookgm/bobis/internal/logger"
	"github.com/rookgm/bobis/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ChecklistGateway is interface for backend calls made on dispatch confirmation
type ChecklistGateway interface {
	// OrderDetail returns coils of order
	OrderDetail(ctx context.Context, id int64) ([]models.Coil, error)
	// UpdateOrderStatus sets order status
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) error
	// UpdateCoil partially updates coil fields
	UpdateCoil(ctx context.Context, id int64, fields map[string]any) error
}

// PendingRegister is interface for pending orders register
type PendingRegister interface {
	Get(id int64) (models.PendingOrder, bool)
	Snapshot() []models.PendingOrder
	Complete(id int64) bool
}

// DispatchJournalWriter stores confirmed dispatches
type DispatchJournalWriter interface {
	Save(ctx context.Context, rec *models.DispatchRecord) error
}

// ChecklistView is checklist of selected order with derived totals
type ChecklistView struct {
	Order          *models.PendingOrder    `json:"pedido"`
	Entries        []models.ChecklistEntry `json:"bobinas"`
	Verified       int                     `json:"seleccionadas"`
	Total          int                     `json:"total"`
	AllVerified    bool                    `json:"todas_seleccionadas"`
	TotalWeight    decimal.Decimal         `json:"peso_total"`
	VerifiedWeight decimal.Decimal         `json:"peso_seleccionado"`
}

type checklistSession struct {
	mu      sync.Mutex
	order   *models.PendingOrder
	entries []models.ChecklistEntry
}

func (s *checklistSession) reset() {
	s.order = nil
	s.entries = nil
}

// DispatchChecklist verifies coils of pending orders and confirms dispatch
type DispatchChecklist struct {
	gw           ChecklistGateway
	register     PendingRegister
	journal      DispatchJournalWriter
	placeholders bool
	sessions     *sessions[checklistSession]
	now          func() time.Time
}

// NewDispatchChecklist creates new DispatchChecklist instance.
// When placeholders is set, orders without coils get two placeholder
// entries instead of backend order detail.
func NewDispatchChecklist(gw ChecklistGateway, register PendingRegister, journal DispatchJournalWriter, placeholders bool) *DispatchChecklist {
	return &DispatchChecklist{
		gw:           gw,
		register:     register,
		journal:      journal,
		placeholders: placeholders,
		sessions:     newSessions(func() *checklistSession { return &checklistSession{} }),
		now:          time.Now,
	}
}

// placeholderEntries are shown for an order that carries no coils
func placeholderEntries() []models.ChecklistEntry {
	return []models.ChecklistEntry{
		{
			CoilID:        1,
			CoilTypeDesc:  "Bobina HR SAE1006",
			PurchaseOrder: "PO-1001",
			Heat:          "COL001",
			SupplierName:  models.PlaceholderSupplier,
			Weight:        decimal.RequireFromString("2420.35"),
			Placeholder:   true,
		},
		{
			CoilID:        2,
			CoilTypeDesc:  "Bobina CR SAE1008",
			PurchaseOrder: "PO-1001",
			Heat:          "COL002",
			SupplierName:  models.PlaceholderSupplier,
			Weight:        decimal.RequireFromString("1985.70"),
			Placeholder:   true,
		},
	}
}

// Pending returns orders awaiting dispatch
func (dc *DispatchChecklist) Pending() []models.PendingOrder {
	return dc.register.Snapshot()
}

// Select starts checklist of pending order, every coil unverified
func (dc *DispatchChecklist) Select(ctx context.Context, acc models.Account, orderID int64) (*ChecklistView, error) {
	order, ok := dc.register.Get(orderID)
	if !ok {
		return nil, fmt.Errorf("order %d is not pending: %w", orderID, models.ErrDataNotFound)
	}

	var entries []models.ChecklistEntry
	switch {
	case len(order.Coils) > 0:
		entries = make([]models.ChecklistEntry, len(order.Coils))
		copy(entries, order.Coils)
	case dc.placeholders:
		logger.Log.Warn("order has no coils, using placeholder entries", zap.Int64("order", orderID))
		entries = placeholderEntries()
	default:
		coils, err := dc.gw.OrderDetail(ctx, orderID)
		if err != nil {
			return nil, err
		}
		entries = make([]models.ChecklistEntry, 0, len(coils))
		for _, c := range coils {
			entries = append(entries, models.EntryFromCoil(c))
		}
	}
	for i := range entries {
		entries[i].Verified = false
	}

	s := dc.sessions.get(acc.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	order.Coils = nil
	s.order = &order
	s.entries = entries

	return s.view(), nil
}

// Toggle flips verified flag of one coil
func (dc *DispatchChecklist) Toggle(acc models.Account, coilID int64) (*ChecklistView, error) {
	s := dc.sessions.get(acc.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.order == nil {
		return nil, models.NewValidationError(models.MsgNoOrderSelected)
	}

	for i := range s.entries {
		if s.entries[i].CoilID == coilID {
			s.entries[i].Verified = !s.entries[i].Verified
			return s.view(), nil
		}
	}
	return nil, fmt.Errorf("coil %d is not in order %d: %w", coilID, s.order.ID, models.ErrDataNotFound)
}

// View returns current checklist
func (dc *DispatchChecklist) View(acc models.Account) *ChecklistView {
	s := dc.sessions.get(acc.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view()
}

// Confirm confirms dispatch of selected order. Every coil must be verified.
// Backend is updated first. Order leaves the register only after backend
// accepted the dispatch.
func (dc *DispatchChecklist) Confirm(ctx context.Context, acc models.Account) (*models.DispatchRecord, error) {
	s := dc.sessions.get(acc.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.order == nil {
		return nil, models.NewValidationError(models.MsgNoOrderSelected)
	}
	if !AllVerified(s.entries) {
		return nil, models.NewValidationError(models.MsgNotAllVerified)
	}

	order := *s.order
	if _, ok := dc.register.Get(order.ID); !ok {
		s.reset()
		return nil, fmt.Errorf("order %d is not pending: %w", order.ID, models.ErrDataNotFound)
	}

	placeholders := false
	coilIDs := make([]int64, 0, len(s.entries))
	for _, e := range s.entries {
		if e.Placeholder {
			placeholders = true
			continue
		}
		coilIDs = append(coilIDs, e.CoilID)
	}

	// coils moved before a failure stay dispatched in backend; order stays
	// pending and confirming again repeats every update
	for _, id := range coilIDs {
		if err := dc.gw.UpdateCoil(ctx, id, map[string]any{"estado_id_estado": models.CoilStateDispatched}); err != nil {
			logger.Log.Error("mark coil dispatched", zap.Int64("order", order.ID), zap.Int64("coil", id), zap.Error(err))
			return nil, err
		}
	}
	if err := dc.gw.UpdateOrderStatus(ctx, order.ID, models.OrderStatusAttended); err != nil {
		logger.Log.Error("mark order attended", zap.Int64("order", order.ID), zap.Error(err))
		return nil, err
	}

	if !dc.register.Complete(order.ID) {
		s.reset()
		return nil, fmt.Errorf("order %d is not pending: %w", order.ID, models.ErrDataNotFound)
	}

	rec := &models.DispatchRecord{
		ID:           uuid.New(),
		OrderID:      order.ID,
		OrderedAt:    order.OrderedAt,
		Requester:    order.Requester,
		Notes:        order.Notes,
		ConfirmedBy:  acc.DisplayName(),
		ConfirmedAt:  dc.now(),
		TotalWeight:  TotalWeight(s.entries),
		Coils:        append([]models.ChecklistEntry(nil), s.entries...),
		Placeholders: placeholders,
	}

	if err := dc.journal.Save(ctx, rec); err != nil {
		logger.Log.Error("save dispatch record", zap.Int64("order", order.ID), zap.Error(err))
	}

	logger.Log.Info("dispatch confirmed",
		zap.Int64("order", order.ID),
		zap.String("operator", acc.ID),
		zap.String("weight", rec.TotalWeight.String()))

	s.reset()
	return rec, nil
}

// view must be called with session lock held
func (s *checklistSession) view() *ChecklistView {
	v := &ChecklistView{
		Entries:        append([]models.ChecklistEntry{}, s.entries...),
		Verified:       VerifiedCount(s.entries),
		Total:          len(s.entries),
		AllVerified:    AllVerified(s.entries),
		TotalWeight:    TotalWeight(s.entries),
		VerifiedWeight: VerifiedWeight(s.entries),
	}
	if s.order != nil {
		o := *s.order
		v.Order = &o
	}
	return v
}

// VerifiedCount returns number of verified entries
func VerifiedCount(entries []models.ChecklistEntry) int {
	n := 0
	for _, e := range entries {
		if e.Verified {
			n++
		}
	}
	return n
}

// AllVerified reports whether checklist is non-empty and every entry is verified
func AllVerified(entries []models.ChecklistEntry) bool {
	return len(entries) > 0 && VerifiedCount(entries) == len(entries)
}

// TotalWeight sums weight of all entries
func TotalWeight(entries []models.ChecklistEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Weight)
	}
	return sum
}

// VerifiedWeight sums weight of verified entries
func VerifiedWeight(entries []models.ChecklistEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		if e.Verified {
			sum = sum.Add(e.Weight)
		}
	}
	return sum
}

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rookgm/bobis/internal/logger"
	"github.com/rookgm/bobis/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// number of coils loaded into the builder
const builderPageSize = 100

// BuilderState is state of order building session
type BuilderState string

const (
	BuilderIdle       BuilderState = "idle"
	BuilderBuilding   BuilderState = "building"
	BuilderSubmitting BuilderState = "submitting"
)

// SelectOrigin is how operator picked a coil
type SelectOrigin string

const (
	SelectClick SelectOrigin = "click"
	SelectDrag  SelectOrigin = "drag"
)

// BuilderGateway is interface for coil and order data used by builder
type BuilderGateway interface {
	// ListCoils returns one page of coils
	ListCoils(ctx context.Context, q models.CoilQuery) (*models.CoilPage, error)
	// CreateOrder creates dispatch order and returns its id
	CreateOrder(ctx context.Context, order *models.NewOrder) (int64, error)
}

// PendingRegistrar is the write side of pending orders register
type PendingRegistrar interface {
	Register(order models.PendingOrder)
}

// BuilderView is what operator sees while building an order
type BuilderView struct {
	State         BuilderState    `json:"estado"`
	Search        string          `json:"busqueda"`
	Available     []models.Coil   `json:"disponibles"`
	Selected      []models.Coil   `json:"seleccionados"`
	Notes         string          `json:"observaciones"`
	TotalWeight   decimal.Decimal `json:"peso_total"`
	TotalQuantity int64           `json:"cantidad_total"`
	Suppliers     int             `json:"proveedores"`
	LastOrderID   int64           `json:"ultimo_pedido,omitempty"`
}

type builderSession struct {
	mu          sync.Mutex
	state       BuilderState
	loaded      bool
	available   []models.Coil
	search      string
	working     []models.Coil
	notes       string
	lastOrderID int64
}

// OrderBuilder assembles dispatch orders from available coils
type OrderBuilder struct {
	gw       BuilderGateway
	register PendingRegistrar
	sessions *sessions[builderSession]
	now      func() time.Time
}

// NewOrderBuilder creates new OrderBuilder instance
func NewOrderBuilder(gw BuilderGateway, register PendingRegistrar) *OrderBuilder {
	return &OrderBuilder{
		gw:       gw,
		register: register,
		sessions: newSessions(func() *builderSession {
			return &builderSession{state: BuilderIdle}
		}),
		now: time.Now,
	}
}

// fetchAvailable loads coils with state available, oldest plant entry first
func (ob *OrderBuilder) fetchAvailable(ctx context.Context) ([]models.Coil, error) {
	state := int64(models.CoilStateAvailable)
	page, err := ob.gw.ListCoils(ctx, models.CoilQuery{
		Page:    1,
		PerPage: builderPageSize,
		State:   &state,
	})
	if err != nil {
		return nil, err
	}

	coils := available(page.Coils)
	SortByPlantEntry(coils)
	return coils, nil
}

// Reload refreshes available coils of operator session
func (ob *OrderBuilder) Reload(ctx context.Context, acc models.Account) (*BuilderView, error) {
	s := ob.sessions.get(acc.ID)

	coils, err := ob.fetchAvailable(ctx)
	if err != nil {
		logger.Log.Error("load available coils", zap.String("operator", acc.ID), zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.available = coils
	s.loaded = true

	return s.view(), nil
}

// View returns builder view, loading available coils on first use
func (ob *OrderBuilder) View(ctx context.Context, acc models.Account) (*BuilderView, error) {
	s := ob.sessions.get(acc.ID)

	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()

	if !loaded {
		return ob.Reload(ctx, acc)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(), nil
}

// Search sets search text of available list
func (ob *OrderBuilder) Search(acc models.Account, text string) *BuilderView {
	s := ob.sessions.get(acc.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.search = text
	return s.view()
}

// Select adds available coil to working set. Selecting a coil
// already in working set changes nothing.
func (ob *OrderBuilder) Select(acc models.Account, coilID int64, origin SelectOrigin) (*BuilderView, error) {
	s := ob.sessions.get(acc.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == BuilderSubmitting {
		return nil, models.NewValidationError(models.MsgOrderSubmitting)
	}

	idx := indexOfCoil(s.available, coilID)
	if idx < 0 {
		return nil, fmt.Errorf("coil %d is not available: %w", coilID, models.ErrDataNotFound)
	}

	if indexOfCoil(s.working, coilID) < 0 {
		s.working = append(s.working, s.available[idx])
		logger.Log.Debug("coil selected",
			zap.String("operator", acc.ID),
			zap.Int64("coil", coilID),
			zap.String("origin", string(origin)))
	}
	s.state = BuilderBuilding

	return s.view(), nil
}

// Deselect removes coil from working set
func (ob *OrderBuilder) Deselect(acc models.Account, coilID int64) (*BuilderView, error) {
	s := ob.sessions.get(acc.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == BuilderSubmitting {
		return nil, models.NewValidationError(models.MsgOrderSubmitting)
	}

	if idx := indexOfCoil(s.working, coilID); idx >= 0 {
		s.working = append(s.working[:idx:idx], s.working[idx+1:]...)
	}
	if len(s.working) == 0 {
		s.state = BuilderIdle
	}

	return s.view(), nil
}

// SetNotes sets observations of order being built
func (ob *OrderBuilder) SetNotes(acc models.Account, notes string) (*BuilderView, error) {
	s := ob.sessions.get(acc.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == BuilderSubmitting {
		return nil, models.NewValidationError(models.MsgOrderSubmitting)
	}

	s.notes = notes
	return s.view(), nil
}

// Submit creates order from working set and registers it as pending.
// On failure working set and notes are kept.
func (ob *OrderBuilder) Submit(ctx context.Context, acc models.Account) (*models.PendingOrder, error) {
	s := ob.sessions.get(acc.ID)

	s.mu.Lock()
	if s.state == BuilderSubmitting {
		s.mu.Unlock()
		return nil, models.NewValidationError(models.MsgOrderSubmitting)
	}
	if len(s.working) == 0 {
		s.mu.Unlock()
		return nil, models.NewValidationError(models.MsgEmptySelection)
	}

	s.state = BuilderSubmitting
	working := append([]models.Coil(nil), s.working...)
	notes := s.notes
	s.mu.Unlock()

	ids := make([]int64, 0, len(working))
	for _, c := range working {
		ids = append(ids, c.ID)
	}

	orderID, err := ob.gw.CreateOrder(ctx, &models.NewOrder{
		RequesterID: acc.UserID,
		Notes:       notes,
		CoilIDs:     ids,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = BuilderBuilding
		logger.Log.Error("create order", zap.String("operator", acc.ID), zap.Int("coils", len(ids)), zap.Error(err))
		return nil, err
	}

	order := models.PendingOrder{
		ID:        orderID,
		OrderedAt: ob.now(),
		Status:    models.OrderStatusSent,
		Notes:     notes,
		Requester: acc.DisplayName(),
		Coils:     make([]models.ChecklistEntry, 0, len(working)),
	}
	for _, c := range working {
		order.Coils = append(order.Coils, models.EntryFromCoil(c))
	}

	ob.register.Register(order)

	logger.Log.Info("order submitted",
		zap.Int64("order", orderID),
		zap.String("operator", acc.ID),
		zap.Int("coils", len(ids)))

	coils, err := ob.fetchAvailable(ctx)
	if err != nil {
		logger.Log.Warn("refresh available coils after submit", zap.Int64("order", orderID), zap.Error(err))
		coils = withoutCoils(s.available, ids)
	}
	s.available = coils

	s.working = nil
	s.notes = ""
	s.lastOrderID = orderID
	s.state = BuilderIdle

	return &order, nil
}

func withoutCoils(coils []models.Coil, ids []int64) []models.Coil {
	skip := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		skip[id] = struct{}{}
	}

	out := make([]models.Coil, 0, len(coils))
	for _, c := range coils {
		if _, ok := skip[c.ID]; !ok {
			out = append(out, c)
		}
	}
	return out
}

// view must be called with session lock held
func (s *builderSession) view() *BuilderView {
	filtered := FilterCoils(s.available, s.search)
	SortByPlantEntry(filtered)

	selected := append([]models.Coil{}, s.working...)

	var qty int64
	suppliers := make(map[string]struct{})
	for _, c := range selected {
		qty += c.Quantity
		suppliers[c.SupplierName] = struct{}{}
	}

	return &BuilderView{
		State:         s.state,
		Search:        s.search,
		Available:     filtered,
		Selected:      selected,
		Notes:         s.notes,
		TotalWeight:   totalWeight(selected),
		TotalQuantity: qty,
		Suppliers:     len(suppliers),
		LastOrderID:   s.lastOrderID,
	}
}

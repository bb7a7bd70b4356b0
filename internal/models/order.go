package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Borrador — pedido en construcción;
// Enviado — pedido enviado al backend, pendiente de despacho;
// Atendido — pedido despachado;
// Cancelado — pedido anulado.

// OrderStatus is dispatch order status
type OrderStatus string

// order status
const (
	OrderStatusDraft     OrderStatus = "Borrador"
	OrderStatusSent      OrderStatus = "Enviado"
	OrderStatusAttended  OrderStatus = "Atendido"
	OrderStatusCancelled OrderStatus = "Cancelado"
)

// Valid reports whether status is known
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusSent, OrderStatusAttended, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is dispatch order entity
type Order struct {
	ID          int64       `json:"id_pedido"`
	OrderedAt   time.Time   `json:"fecha_pedido"`
	RequesterID int64       `json:"usuario_solicita_id"`
	Requester   string      `json:"solicitante"`
	Notes       string      `json:"observaciones"`
	Status      OrderStatus `json:"estado_pedido"`
	CoilCount   int         `json:"cant_bobinas"`
	Coils       []Coil      `json:"bobinas,omitempty"`
}

// OrderPage is one page of order history
type OrderPage struct {
	Orders  []Order `json:"data"`
	Page    int     `json:"page"`
	PerPage int     `json:"per_page"`
	Total   int     `json:"total"`
	Pages   int     `json:"pages"`
}

// NewOrder is order creation request
type NewOrder struct {
	RequesterID int64   `json:"usuario_solicita_id"`
	Notes       string  `json:"observaciones"`
	CoilIDs     []int64 `json:"registros"`
}

// ChecklistEntry is one coil of a pending order being verified
type ChecklistEntry struct {
	CoilID        int64           `json:"id_registro"`
	DetailID      int64           `json:"id_pedido_det"`
	CoilTypeDesc  string          `json:"bobina_desc"`
	PurchaseOrder string          `json:"pedido_compra"`
	Heat          string          `json:"colada"`
	SupplierName  string          `json:"proveedor_nombre"`
	Weight        decimal.Decimal `json:"peso"`
	Verified      bool            `json:"seleccionada"`
	// Placeholder marks a synthesized entry without backing coil
	Placeholder bool `json:"placeholder,omitempty"`
}

// PendingOrder is a submitted order waiting for dispatch confirmation
type PendingOrder struct {
	ID        int64            `json:"id_pedido"`
	OrderedAt time.Time        `json:"fecha_pedido"`
	Status    OrderStatus      `json:"estado_pedido"`
	Notes     string           `json:"observaciones"`
	Requester string           `json:"solicitante"`
	Coils     []ChecklistEntry `json:"bobinas"`
}

// Clone returns deep copy of pending order
func (p PendingOrder) Clone() PendingOrder {
	c := p
	if p.Coils != nil {
		c.Coils = make([]ChecklistEntry, len(p.Coils))
		copy(c.Coils, p.Coils)
	}
	return c
}

// EntryFromCoil creates unverified checklist entry from coil
func EntryFromCoil(c Coil) ChecklistEntry {
	return ChecklistEntry{
		CoilID:        c.ID,
		CoilTypeDesc:  c.CoilTypeDesc,
		PurchaseOrder: c.PurchaseOrder,
		Heat:          c.Heat,
		SupplierName:  c.SupplierName,
		Weight:        c.Weight,
	}
}

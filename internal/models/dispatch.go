package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DispatchRecord is a confirmed dispatch kept in the journal
type DispatchRecord struct {
	ID           uuid.UUID        `json:"id"`
	OrderID      int64            `json:"id_pedido"`
	OrderedAt    time.Time        `json:"fecha_pedido"`
	Requester    string           `json:"solicitante"`
	Notes        string           `json:"observaciones"`
	ConfirmedBy  string           `json:"confirmado_por"`
	ConfirmedAt  time.Time        `json:"fecha_despacho"`
	TotalWeight  decimal.Decimal  `json:"peso_total"`
	Coils        []ChecklistEntry `json:"bobinas"`
	Placeholders bool             `json:"placeholders,omitempty"`
}

// DispatchSummary is one order of dispatch history
type DispatchSummary struct {
	Order
	Pending      bool       `json:"pendiente"`
	Dispatched   bool       `json:"estado_despacho"`
	DispatchedAt *time.Time `json:"fecha_despacho,omitempty"`
	DispatchedBy string     `json:"despachado_por,omitempty"`
}

// HistoryQuery is dispatch history request
type HistoryQuery struct {
	Page    int
	PerPage int
	Status  OrderStatus
	Search  string
}

// HistoryPage is one page of dispatch history
type HistoryPage struct {
	Dispatches []DispatchSummary `json:"data"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	Total      int               `json:"total"`
	Pages      int               `json:"pages"`
}

// DispatchLine is one coil of a dispatch with order metadata
type DispatchLine struct {
	DetailID      int64           `json:"id_pedido_det"`
	OrderID       int64           `json:"id_pedido"`
	CoilID        int64           `json:"id_registro"`
	OrderedAt     time.Time       `json:"fecha_pedido"`
	Requester     string          `json:"solicitante"`
	Status        OrderStatus     `json:"estado_pedido"`
	OrderNotes    string          `json:"ped_observaciones"`
	Dispatched    bool            `json:"estado_despacho"`
	PurchaseOrder string          `json:"pedido_compra"`
	Heat          string          `json:"colada"`
	Weight        decimal.Decimal `json:"peso"`
	CoilTypeDesc  string          `json:"bobina_desc"`
	SupplierName  string          `json:"proveedor_nombre"`
	DispatchedAt  *time.Time      `json:"fecha_despacho,omitempty"`
}

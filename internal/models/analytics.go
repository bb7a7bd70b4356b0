package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PopularCoil is coil type ranked by number of orders
type PopularCoil struct {
	CoilType      string          `json:"bobina"`
	Orders        int64           `json:"total_pedidos"`
	AverageWeight decimal.Decimal `json:"peso_promedio"`
}

// StateCount is number of coils in one state
type StateCount struct {
	State string `json:"estado"`
	Count int64  `json:"cantidad"`
}

// MonthlyTrend is order volume of one month
type MonthlyTrend struct {
	Month       string          `json:"mes"`
	Orders      int64           `json:"total_pedidos"`
	TotalWeight decimal.Decimal `json:"peso_total"`
}

// DemandForecast is projected demand of one month
type DemandForecast struct {
	Month     string          `json:"mes"`
	Predicted decimal.Decimal `json:"demanda_predicha"`
	Trend     string          `json:"tendencia"`
}

// AgedCoil is coil staying longest in inventory
type AgedCoil struct {
	CoilID     int64           `json:"id_registro"`
	CoilType   string          `json:"bobina"`
	EnteredAt  string          `json:"fecha_ingreso"`
	Weight     decimal.Decimal `json:"peso"`
	State      string          `json:"estado"`
	DaysStored int64           `json:"dias_inventario"`
}

// InventoryStats are aggregate coil counts
type InventoryStats struct {
	Total      int64 `json:"totalBobinas"`
	Available  int64 `json:"bobinasDisponibles"`
	Dispatched int64 `json:"bobinasDespachadas"`
}

// Analytics is dashboard analytics served by backend
type Analytics struct {
	PopularCoils []PopularCoil    `json:"bobinasPopulares"`
	States       []StateCount     `json:"estadoBobinas"`
	AgedCoils    []AgedCoil       `json:"bobinasAntiguas"`
	Monthly      []MonthlyTrend   `json:"tendenciaMensual"`
	Forecast     []DemandForecast `json:"prediccionDemanda"`
	Stats        InventoryStats   `json:"estadisticas"`
}

// Dashboard is analytics enriched with local workflow state
type Dashboard struct {
	Analytics     *Analytics `json:"analitica"`
	PendingOrders int        `json:"pedidos_pendientes"`
	BackendOnline bool       `json:"backend_conectado"`
	ServerTime    time.Time  `json:"hora_servidor"`
	// Recent are latest confirmed dispatches
	Recent []DispatchRecord `json:"despachos_recientes"`
}

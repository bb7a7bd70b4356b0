package gateway

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rookgm/bobis/internal/models"
	"github.com/shopspring/decimal"
)

// record is backend row. Backend variants return the same column
// either upper-case or lower-case, so every lookup tries both.
type record map[string]any

// lookup returns value of first present key, upper-case spelling first
func (r record) lookup(keys ...string) (any, bool) {
	for _, key := range keys {
		for _, k := range [...]string{strings.ToUpper(key), strings.ToLower(key), key} {
			if v, ok := r[k]; ok && !empty(v) {
				return v, true
			}
		}
	}
	return nil, false
}

func empty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	}
	return false
}

func (r record) str(def string, keys ...string) string {
	v, ok := r.lookup(keys...)
	if !ok {
		return def
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return def
}

// date normalizes date or datetime value to YYYY-MM-DD
func (r record) date(keys ...string) string {
	s := r.str("", keys...)
	if s == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", time.RFC1123, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// timestamp parses date or datetime value, zero time when absent
func (r record) timestamp(keys ...string) time.Time {
	s := r.str("", keys...)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", time.RFC1123, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// num returns non-negative decimal, 0 when absent or invalid
func (r record) num(keys ...string) decimal.Decimal {
	v, ok := r.lookup(keys...)
	if !ok {
		return decimal.Zero
	}

	var d decimal.Decimal
	switch t := v.(type) {
	case json.Number:
		parsed, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Zero
		}
		d = parsed
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return decimal.Zero
		}
		d = parsed
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Zero
		}
		d = decimal.NewFromFloat(t)
	case int:
		d = decimal.NewFromInt(int64(t))
	case int64:
		d = decimal.NewFromInt(t)
	default:
		return decimal.Zero
	}

	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// integer returns non-negative integer, 0 when absent or invalid
func (r record) integer(keys ...string) int64 {
	return r.num(keys...).Truncate(0).IntPart()
}

func (r record) flag(keys ...string) bool {
	v, ok := r.lookup(keys...)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case json.Number:
		return t.String() != "0"
	case string:
		b, _ := strconv.ParseBool(t)
		return b
	}
	return false
}

func (r record) nested(key string) (record, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return record(m), ok
}

func (r record) list(key string) ([]record, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return nil, false
	}
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	rows := make([]record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			rows = append(rows, record(m))
		}
	}
	return rows, true
}

func toCoil(r record) models.Coil {
	return models.Coil{
		ID:                 r.integer("id_registro"),
		ArrivalDate:        r.date("fecha_llegada"),
		InventoryDate:      r.date("fecha_inventario"),
		PlantEntryDate:     r.date("fecha_ingreso_planta"),
		PurchaseOrder:      r.str("", "pedido_compra"),
		Heat:               r.str("", "colada"),
		Weight:             r.num("peso"),
		Quantity:           r.integer("cantidad"),
		Lot:                r.integer("lote"),
		Notes:              r.str("", "observaciones"),
		PurchaseOrderTons:  r.num("ton_pedido_compra", "tcn_pedido_compra"),
		SupplierCoilNumber: r.str("", "n_bobi_proveedor"),
		Correlative:        r.str("", "bobi_correlativo"),
		CoilTypeID:         r.integer("bobina_id_bobi"),
		CoilTypeDesc:       r.str(models.PlaceholderCoilType, "bobina_desc", "desc_bobi"),
		SupplierID:         r.integer("proveedor_id_prov"),
		SupplierName:       r.str(models.PlaceholderSupplier, "proveedor_nombre", "nombre_prov"),
		ShipID:             r.integer("barco_id_barco"),
		ShipName:           r.str(models.PlaceholderShip, "barco_nombre", "nombre_barco"),
		LocationID:         r.integer("ubicacion_id_ubi"),
		LocationDesc:       r.str(models.PlaceholderLocation, "ubicacion_desc", "desc_ubi"),
		StateID:            r.integer("estado_id_estado"),
		StateDesc:          r.str(models.PlaceholderState, "estado_desc", "desc_estado"),
		MillID:             r.integer("molino_id_molino"),
		MillName:           r.str(models.PlaceholderMill, "molino_nombre", "nombre_molino"),
	}
}

func toCoils(rows []record) []models.Coil {
	coils := make([]models.Coil, 0, len(rows))
	for _, r := range rows {
		coils = append(coils, toCoil(r))
	}
	return coils
}

func toOrder(r record) models.Order {
	order := models.Order{
		ID:          r.integer("id_pedido"),
		OrderedAt:   r.timestamp("fecha_pedido"),
		RequesterID: r.integer("usuario_solicita_id"),
		Requester:   r.str("", "solicitante"),
		Notes:       r.str("", "observaciones"),
		Status:      models.OrderStatus(r.str(string(models.OrderStatusDraft), "estado_pedido")),
		CoilCount:   int(r.integer("cant_bobinas", "bobinas_count")),
	}
	if rows, ok := r.list("bobinas"); ok {
		order.Coils = toCoils(rows)
		if order.CoilCount == 0 {
			order.CoilCount = len(order.Coils)
		}
	}
	return order
}

// toOption maps a combo row. Id and label column names differ per
// table, so the first id-like and the first text column are used.
func toOption(r record) models.Option {
	opt := models.Option{
		ID:    r.integer("id"),
		Label: r.str("", "label", "nombre", "descripcion"),
	}
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		v := r[key]
		k := strings.ToUpper(key)
		switch {
		case opt.ID == 0 && strings.HasPrefix(k, "ID_"):
			opt.ID = record{k: v}.integer(k)
		case opt.Label == "" && (strings.HasPrefix(k, "NOMBRE") || strings.HasPrefix(k, "DESC")):
			opt.Label = record{k: v}.str("", k)
		}
	}
	return opt
}

func toOptions(rows []record) []models.Option {
	opts := make([]models.Option, 0, len(rows))
	for _, r := range rows {
		opts = append(opts, toOption(r))
	}
	return opts
}

// toReferenceRow keeps row as is, only upper-casing keys
func toReferenceRow(r record) models.ReferenceRow {
	row := make(models.ReferenceRow, len(r))
	for k, v := range r {
		if n, ok := v.(json.Number); ok {
			if i, err := n.Int64(); err == nil {
				row[strings.ToUpper(k)] = i
				continue
			}
			if f, err := n.Float64(); err == nil {
				row[strings.ToUpper(k)] = f
				continue
			}
		}
		row[strings.ToUpper(k)] = v
	}
	return row
}

func toAnalytics(r record) models.Analytics {
	a := models.Analytics{}

	if rows, ok := r.list("bobinasPopulares"); ok {
		for _, row := range rows {
			a.PopularCoils = append(a.PopularCoils, models.PopularCoil{
				CoilType:      row.str("", "bobina"),
				Orders:        row.integer("total_pedidos"),
				AverageWeight: row.num("peso_promedio"),
			})
		}
	}
	if rows, ok := r.list("estadoBobinas"); ok {
		for _, row := range rows {
			a.States = append(a.States, models.StateCount{
				State: row.str(models.PlaceholderState, "estado"),
				Count: row.integer("cantidad"),
			})
		}
	}
	if rows, ok := r.list("bobinasAntiguas"); ok {
		for _, row := range rows {
			a.AgedCoils = append(a.AgedCoils, models.AgedCoil{
				CoilID:     row.integer("id_registro"),
				CoilType:   row.str(models.PlaceholderCoilType, "bobina"),
				EnteredAt:  row.date("fecha_ingreso"),
				Weight:     row.num("peso"),
				State:      row.str(models.PlaceholderState, "estado"),
				DaysStored: row.integer("dias_inventario"),
			})
		}
	}
	if rows, ok := r.list("tendenciaMensual"); ok {
		for _, row := range rows {
			a.Monthly = append(a.Monthly, models.MonthlyTrend{
				Month:       row.str("", "mes"),
				Orders:      row.integer("total_pedidos"),
				TotalWeight: row.num("peso_total"),
			})
		}
	}
	if rows, ok := r.list("prediccionDemanda"); ok {
		for _, row := range rows {
			a.Forecast = append(a.Forecast, models.DemandForecast{
				Month:     row.str("", "mes"),
				Predicted: row.num("demanda_predicha"),
				Trend:     row.str("", "tendencia"),
			})
		}
	}
	if stats, ok := r.nested("estadisticas"); ok {
		a.Stats = models.InventoryStats{
			Total:      stats.integer("totalBobinas"),
			Available:  stats.integer("bobinasDisponibles"),
			Dispatched: stats.integer("bobinasDespachadas"),
		}
	}

	return a
}

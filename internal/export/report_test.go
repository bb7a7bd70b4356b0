package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rookgm/bobis/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCoils() []models.ChecklistEntry {
	return []models.ChecklistEntry{
		{CoilID: 1, CoilTypeDesc: "Bobina HR SAE1006", PurchaseOrder: "PO-1001", Heat: "COL001", SupplierName: "SiderPerú", Weight: decimal.RequireFromString("2420.35")},
		{CoilID: 2, CoilTypeDesc: "Bobina CR SAE1008", PurchaseOrder: "PO-1001", Heat: "COL002", SupplierName: "SiderPerú", Weight: decimal.RequireFromString("1985.70")},
	}
}

func TestNewReport(t *testing.T) {
	at := time.Date(2025, time.March, 5, 9, 30, 0, 0, time.UTC)
	r := NewReport(12, at, "Ana", models.OrderStatusSent, "", testCoils())

	assert.Equal(t, "Despacho #12 - 05/03/2025", r.Title())
	assert.Equal(t, "despacho-12-05-03-2025.pdf", r.Filename())
	assert.Equal(t, "4406.05", r.TotalWeight().String())

	if diff := cmp.Diff([]string{"COL001", "COL002"}, r.Heats); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"SiderPerú"}, r.Suppliers)
	assert.Equal(t, []string{"PO-1001"}, r.PurchaseOrders)
}

func TestWeightFormat(t *testing.T) {
	tests := []struct {
		weight   string
		wantKg   string
		wantTons string
	}{
		{weight: "2420.35", wantKg: "2420.35 kg", wantTons: "2.420 ton"},
		{weight: "4406.05", wantKg: "4406.05 kg", wantTons: "4.406 ton"},
		{weight: "0", wantKg: "0.00 kg", wantTons: "0.000 ton"},
	}

	for _, tt := range tests {
		t.Run(tt.weight, func(t *testing.T) {
			w := decimal.RequireFromString(tt.weight)
			assert.Equal(t, tt.wantKg, Kilograms(w))
			assert.Equal(t, tt.wantTons, Tons(w))
		})
	}
}

func TestRender(t *testing.T) {
	dispatched := time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC)
	r := NewReport(12, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), "Ana", models.OrderStatusAttended, "Entrega parcial", testCoils())
	r.DispatchedAt = &dispatched

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestReport_UnknownOrderDate(t *testing.T) {
	r := NewReport(7, time.Time{}, "", models.OrderStatusAttended, "", testCoils())

	assert.Equal(t, "Despacho #7", r.Title())
	assert.Equal(t, "despacho-7.pdf", r.Filename())
}

// Package export renders dispatch reports as PDF documents.
package export

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rookgm/bobis/internal/models"
	"github.com/shopspring/decimal"
)

var kgPerTon = decimal.NewFromInt(1000)

// Line is one coil row of report
type Line struct {
	Description string
	Weight      decimal.Decimal
}

// Report is dispatch report of one order
type Report struct {
	OrderID        int64
	OrderedAt      time.Time
	Requester      string
	Status         models.OrderStatus
	Notes          string
	Lines          []Line
	Suppliers      []string
	Heats          []string
	PurchaseOrders []string
	DispatchedAt   *time.Time
}

// NewReport creates report from order metadata and its coils
func NewReport(orderID int64, orderedAt time.Time, requester string, status models.OrderStatus, notes string, coils []models.ChecklistEntry) *Report {
	r := &Report{
		OrderID:   orderID,
		OrderedAt: orderedAt,
		Requester: requester,
		Status:    status,
		Notes:     notes,
	}

	suppliers := map[string]struct{}{}
	heats := map[string]struct{}{}
	orders := map[string]struct{}{}
	for _, c := range coils {
		r.Lines = append(r.Lines, Line{Description: c.CoilTypeDesc, Weight: c.Weight})
		suppliers[c.SupplierName] = struct{}{}
		heats[c.Heat] = struct{}{}
		orders[c.PurchaseOrder] = struct{}{}
	}
	r.Suppliers = sortedKeys(suppliers)
	r.Heats = sortedKeys(heats)
	r.PurchaseOrders = sortedKeys(orders)

	return r
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		if k != "" {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Title returns report title, for example "Despacho #12 - 05/03/2025".
// Date is omitted when order date is unknown.
func (r *Report) Title() string {
	if r.OrderedAt.IsZero() {
		return fmt.Sprintf("Despacho #%d", r.OrderID)
	}
	return fmt.Sprintf("Despacho #%d - %s", r.OrderID, r.OrderedAt.Format("02/01/2006"))
}

// Filename returns download file name of report
func (r *Report) Filename() string {
	if r.OrderedAt.IsZero() {
		return fmt.Sprintf("despacho-%d.pdf", r.OrderID)
	}
	return fmt.Sprintf("despacho-%d-%s.pdf", r.OrderID, r.OrderedAt.Format("02-01-2006"))
}

// TotalWeight returns weight of all lines in kg
func (r *Report) TotalWeight() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range r.Lines {
		sum = sum.Add(l.Weight)
	}
	return sum
}

// Kilograms formats weight in kg with two decimals
func Kilograms(w decimal.Decimal) string {
	return w.StringFixed(2) + " kg"
}

// Tons formats weight given in kg as tons with three decimals
func Tons(w decimal.Decimal) string {
	return w.Div(kgPerTon).StringFixed(3) + " ton"
}

// Render writes report as PDF
func Render(w io.Writer, r *Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.Title(), true)
	pdf.SetMargins(14, 15, 14)
	pdf.AddPage()

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(r.Title()), "", 1, "L", false, 0, "")

	notes := r.Notes
	if strings.TrimSpace(notes) == "" {
		notes = "Ninguna"
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		"Solicitante: " + r.Requester,
		"Estado: " + string(r.Status),
		"Observaciones: " + notes,
	} {
		pdf.CellFormat(0, 7, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	widths := []float64{92, 45, 45}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(66, 139, 202)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range []string{"Bobina", "Peso (kg)", "Peso (ton)"} {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, l := range r.Lines {
		pdf.CellFormat(widths[0], 7, tr(l.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, Kilograms(l.Weight), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, Tons(l.Weight), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	total := r.TotalWeight()
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0], 7, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[1], 7, Kilograms(total), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[2], 7, Tons(total), "1", 0, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("TOTAL PESO: %s toneladas", total.Div(kgPerTon).StringFixed(3)), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []struct {
		label  string
		values []string
	}{
		{"Proveedor", r.Suppliers},
		{"Colada", r.Heats},
		{"Pedido Compra", r.PurchaseOrders},
	} {
		if len(line.values) == 0 {
			continue
		}
		pdf.CellFormat(0, 6, tr(line.label+": "+strings.Join(line.values, ", ")), "", 1, "L", false, 0, "")
	}
	if r.DispatchedAt != nil {
		pdf.CellFormat(0, 6, "Fecha Despacho: "+r.DispatchedAt.Format("02/01/2006"), "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

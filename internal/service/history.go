package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rookgm/bobis/internal/export"
	"github.com/rookgm/bobis/internal/logger"
	"github.com/rookgm/bobis/internal/models"
	"go.uber.org/zap"
)

const pdfContentType = "application/pdf"

// HistoryGateway is interface for backend order history
type HistoryGateway interface {
	OrderHistory(ctx context.Context, page, perPage int, status models.OrderStatus) (*models.OrderPage, error)
	OrderDetail(ctx context.Context, id int64) ([]models.Coil, error)
}

// DispatchJournalReader reads confirmed dispatches
type DispatchJournalReader interface {
	// ByOrder returns dispatch of order or models.ErrDataNotFound
	ByOrder(ctx context.Context, orderID int64) (*models.DispatchRecord, error)
	// ByOrders returns dispatches of given orders keyed by order id
	ByOrders(ctx context.Context, orderIDs []int64) (map[int64]models.DispatchRecord, error)
	// Recent returns latest dispatches, newest first
	Recent(ctx context.Context, limit int) ([]models.DispatchRecord, error)
}

// PendingReader is read side of pending orders register
type PendingReader interface {
	Get(id int64) (models.PendingOrder, bool)
	Snapshot() []models.PendingOrder
}

// ReportArchive stores exported reports
type ReportArchive interface {
	Upload(ctx context.Context, body io.Reader, key, contentType string) (string, error)
}

// ExportedReport is rendered dispatch report
type ExportedReport struct {
	Body     []byte
	Filename string
	// URL is archive location, empty when archive is not configured
	URL string
}

// DispatchHistory lists past orders and their dispatches, exports reports
type DispatchHistory struct {
	gw       HistoryGateway
	journal  DispatchJournalReader
	register PendingReader
	archive  ReportArchive
}

// NewDispatchHistory creates new DispatchHistory instance. archive may be nil.
func NewDispatchHistory(gw HistoryGateway, journal DispatchJournalReader, register PendingReader, archive ReportArchive) *DispatchHistory {
	return &DispatchHistory{
		gw:       gw,
		journal:  journal,
		register: register,
		archive:  archive,
	}
}

// Orders returns one page of order history annotated with dispatch state.
// Search filters the page by requester, observations or status.
func (dh *DispatchHistory) Orders(ctx context.Context, q models.HistoryQuery) (*models.HistoryPage, error) {
	if q.Status != "" && !q.Status.Valid() {
		return nil, models.NewValidationError(fmt.Sprintf("Estado desconocido: %s", q.Status))
	}

	page, err := dh.gw.OrderHistory(ctx, q.Page, q.PerPage, q.Status)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(page.Orders))
	for _, o := range page.Orders {
		ids = append(ids, o.ID)
	}
	records, err := dh.journal.ByOrders(ctx, ids)
	if err != nil {
		// history is still usable without journal annotations
		logger.Log.Error("read dispatch journal", zap.Error(err))
		records = nil
	}

	needle := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]models.DispatchSummary, 0, len(page.Orders))
	for _, o := range page.Orders {
		if needle != "" && !containsAny(needle, o.Requester, o.Notes, string(o.Status)) {
			continue
		}

		sum := models.DispatchSummary{Order: o}
		if _, ok := dh.register.Get(o.ID); ok {
			sum.Pending = true
		}
		if rec, ok := records[o.ID]; ok {
			at := rec.ConfirmedAt
			sum.Dispatched = true
			sum.DispatchedAt = &at
			sum.DispatchedBy = rec.ConfirmedBy
		} else if o.Status == models.OrderStatusAttended {
			sum.Dispatched = true
		}
		out = append(out, sum)
	}

	return &models.HistoryPage{
		Dispatches: out,
		Page:       page.Page,
		PerPage:    page.PerPage,
		Total:      page.Total,
		Pages:      page.Pages,
	}, nil
}

// dispatchSource is order metadata and coils of one dispatch
type dispatchSource struct {
	orderID      int64
	orderedAt    time.Time
	requester    string
	status       models.OrderStatus
	notes        string
	coils        []models.ChecklistEntry
	dispatched   bool
	dispatchedAt *time.Time
}

// source resolves order from journal, then register, then backend detail
func (dh *DispatchHistory) source(ctx context.Context, orderID int64) (*dispatchSource, error) {
	rec, err := dh.journal.ByOrder(ctx, orderID)
	switch {
	case err == nil:
		at := rec.ConfirmedAt
		return &dispatchSource{
			orderID:      rec.OrderID,
			orderedAt:    rec.OrderedAt,
			requester:    rec.Requester,
			status:       models.OrderStatusAttended,
			notes:        rec.Notes,
			coils:        rec.Coils,
			dispatched:   true,
			dispatchedAt: &at,
		}, nil
	case !errors.Is(err, models.ErrDataNotFound):
		logger.Log.Error("read dispatch journal", zap.Int64("order", orderID), zap.Error(err))
	}

	if p, ok := dh.register.Get(orderID); ok {
		return &dispatchSource{
			orderID:   p.ID,
			orderedAt: p.OrderedAt,
			requester: p.Requester,
			status:    p.Status,
			notes:     p.Notes,
			coils:     p.Coils,
		}, nil
	}

	coils, err := dh.gw.OrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(coils) == 0 {
		return nil, fmt.Errorf("order %d has no coils: %w", orderID, models.ErrDataNotFound)
	}

	// backend detail carries no order metadata
	src := &dispatchSource{orderID: orderID}
	for _, c := range coils {
		src.coils = append(src.coils, models.EntryFromCoil(c))
	}
	return src, nil
}

// Lines returns coils of order as dispatch lines. Search matches purchase
// order, heat, coil description, supplier or requester.
func (dh *DispatchHistory) Lines(ctx context.Context, orderID int64, search string) ([]models.DispatchLine, error) {
	src, err := dh.source(ctx, orderID)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))

	lines := make([]models.DispatchLine, 0, len(src.coils))
	for _, c := range src.coils {
		if needle != "" && !containsAny(needle, c.PurchaseOrder, c.Heat, c.CoilTypeDesc, c.SupplierName, src.requester) {
			continue
		}
		lines = append(lines, models.DispatchLine{
			DetailID:      c.DetailID,
			OrderID:       src.orderID,
			CoilID:        c.CoilID,
			OrderedAt:     src.orderedAt,
			Requester:     src.requester,
			Status:        src.status,
			OrderNotes:    src.notes,
			Dispatched:    src.dispatched,
			PurchaseOrder: c.PurchaseOrder,
			Heat:          c.Heat,
			Weight:        c.Weight,
			CoilTypeDesc:  c.CoilTypeDesc,
			SupplierName:  c.SupplierName,
			DispatchedAt:  src.dispatchedAt,
		})
	}
	return lines, nil
}

// Recent returns latest confirmed dispatches
func (dh *DispatchHistory) Recent(ctx context.Context, limit int) ([]models.DispatchRecord, error) {
	return dh.journal.Recent(ctx, limit)
}

// Export renders PDF report of order. When archive is set the report is
// uploaded too, archive failure is logged only.
func (dh *DispatchHistory) Export(ctx context.Context, orderID int64) (*ExportedReport, error) {
	src, err := dh.source(ctx, orderID)
	if err != nil {
		return nil, err
	}

	report := export.NewReport(src.orderID, src.orderedAt, src.requester, src.status, src.notes, src.coils)
	report.DispatchedAt = src.dispatchedAt

	var buf bytes.Buffer
	if err := export.Render(&buf, report); err != nil {
		return nil, fmt.Errorf("render report of order %d: %w", orderID, err)
	}

	out := &ExportedReport{
		Body:     buf.Bytes(),
		Filename: report.Filename(),
	}

	if dh.archive != nil {
		key := "despachos/" + uuid.NewString() + "-" + out.Filename
		url, err := dh.archive.Upload(ctx, bytes.NewReader(out.Body), key, pdfContentType)
		if err != nil {
			logger.Log.Error("archive report", zap.Int64("order", orderID), zap.Error(err))
		} else {
			out.URL = url
		}
	}

	return out, nil
}

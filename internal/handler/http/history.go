package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rookgm/bobis/internal/gateway"
	"github.com/rookgm/bobis/internal/logger"
	"github.com/rookgm/bobis/internal/models"
	"github.com/rookgm/bobis/internal/service"
	"go.uber.org/zap"
)

// ArchiveURLHeader carries archive location of exported report
const ArchiveURLHeader = "X-Archive-URL"

type HistoryService interface {
	Orders(ctx context.Context, q models.HistoryQuery) (*models.HistoryPage, error)
	Lines(ctx context.Context, orderID int64, search string) ([]models.DispatchLine, error)
	Export(ctx context.Context, orderID int64) (*service.ExportedReport, error)
}

// HistoryHandler represents HTTP handler for dispatch history
type HistoryHandler struct {
	svc HistoryService
}

// NewHistoryHandler creates new HistoryHandler instance
func NewHistoryHandler(svc HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// Orders returns one page of dispatch history
// 200 — solicitud procesada;
// 422 — estado desconocido;
// 502 — backend inalcanzable o con error.
func (hh *HistoryHandler) Orders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := models.HistoryQuery{
			Page:    intQuery(r, "page", 1),
			PerPage: intQuery(r, "per_page", gateway.DefaultPerPage),
			Status:  models.OrderStatus(r.URL.Query().Get("estado")),
			Search:  r.URL.Query().Get("busqueda"),
		}

		page, err := hh.svc.Orders(r.Context(), q)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

// Lines returns coils of dispatch
// 200 — solicitud procesada;
// 400 — id inválido;
// 502 — backend inalcanzable o con error.
func (hh *HistoryHandler) Lines() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "id inválido")
			return
		}

		lines, err := hh.svc.Lines(r.Context(), id, r.URL.Query().Get("busqueda"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, lines)
	}
}

// Export returns dispatch report as PDF
// 200 — reporte generado;
// 400 — id inválido;
// 404 — pedido sin bobinas;
// 502 — backend inalcanzable o con error.
func (hh *HistoryHandler) Export() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "id inválido")
			return
		}

		report, err := hh.svc.Export(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
		if report.URL != "" {
			w.Header().Set(ArchiveURLHeader, report.URL)
		}
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(report.Body); err != nil {
			logger.Log.Debug("write report", zap.Int64("order", id), zap.Error(err))
		}
	}
}

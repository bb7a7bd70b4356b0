package handler

import (
	"context"
	"net/http"

	"github.com/rookgm/bobis/internal/models"
)

type DashboardService interface {
	Get(ctx context.Context) (*models.Dashboard, error)
	Online() bool
}

// DashboardHandler represents HTTP handler for dashboard and session info
type DashboardHandler struct {
	svc DashboardService
}

// NewDashboardHandler creates new DashboardHandler instance
func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Dashboard returns summary of warehouse
// 200 — solicitud procesada;
// 502 — backend inalcanzable o con error.
func (dh *DashboardHandler) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := dh.svc.Get(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, d)
	}
}

type statusResponse struct {
	Online bool `json:"conectado"`
}

// Status returns last known backend connectivity
// 200 — solicitud procesada.
func (dh *DashboardHandler) Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, statusResponse{Online: dh.svc.Online()})
	}
}

// Me returns authenticated operator
// 200 — solicitud procesada;
// 401 — no autenticado.
func (dh *DashboardHandler) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		writeJSON(w, http.StatusOK, acc)
	}
}

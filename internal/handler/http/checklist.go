package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rookgm/bobis/internal/models"
	"github.com/rookgm/bobis/internal/service"
)

type ChecklistService interface {
	Pending() []models.PendingOrder
	View(acc models.Account) *service.ChecklistView
	Select(ctx context.Context, acc models.Account, orderID int64) (*service.ChecklistView, error)
	Toggle(acc models.Account, coilID int64) (*service.ChecklistView, error)
	Confirm(ctx context.Context, acc models.Account) (*models.DispatchRecord, error)
}

// ChecklistHandler represents HTTP handler for dispatch verification
type ChecklistHandler struct {
	svc ChecklistService
}

// NewChecklistHandler creates new ChecklistHandler instance
func NewChecklistHandler(svc ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{svc: svc}
}

// Pending returns orders waiting for dispatch
// 200 — solicitud procesada.
func (ch *ChecklistHandler) Pending() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ch.svc.Pending())
	}
}

// View returns checklist of operator
// 200 — solicitud procesada;
// 401 — no autenticado.
func (ch *ChecklistHandler) View() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		writeJSON(w, http.StatusOK, ch.svc.View(acc))
	}
}

type selectOrderRequest struct {
	OrderID int64 `json:"id_pedido"`
}

// Select opens checklist of pending order
// 200 — solicitud procesada;
// 400 — formato de solicitud inválido;
// 401 — no autenticado;
// 404 — pedido no pendiente;
// 502 — backend inalcanzable o con error.
func (ch *ChecklistHandler) Select() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		var req selectOrderRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID <= 0 {
			badRequest(w, "bad request")
			return
		}
		defer r.Body.Close()

		v, err := ch.svc.Select(r.Context(), acc, req.OrderID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

// Toggle flips verified flag of coil
// 200 — solicitud procesada;
// 400 — id inválido;
// 401 — no autenticado;
// 404 — bobina fuera del pedido;
// 422 — ningún pedido seleccionado.
func (ch *ChecklistHandler) Toggle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "id inválido")
			return
		}

		v, err := ch.svc.Toggle(acc, id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

// Confirm confirms dispatch of selected order
// 200 — despacho confirmado;
// 401 — no autenticado;
// 422 — faltan bobinas por verificar;
// 502 — backend inalcanzable o con error.
func (ch *ChecklistHandler) Confirm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		rec, err := ch.svc.Confirm(r.Context(), acc)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

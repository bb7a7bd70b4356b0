package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rookgm/bobis/internal/models"
	"github.com/rookgm/bobis/internal/service"
)

type BuilderService interface {
	View(ctx context.Context, acc models.Account) (*service.BuilderView, error)
	Reload(ctx context.Context, acc models.Account) (*service.BuilderView, error)
	Search(acc models.Account, text string) *service.BuilderView
	Select(acc models.Account, coilID int64, origin service.SelectOrigin) (*service.BuilderView, error)
	Deselect(acc models.Account, coilID int64) (*service.BuilderView, error)
	SetNotes(acc models.Account, notes string) (*service.BuilderView, error)
	Submit(ctx context.Context, acc models.Account) (*models.PendingOrder, error)
}

// OrderQueryService reads orders straight from backend
type OrderQueryService interface {
	ListOrdersInProgress(ctx context.Context) ([]models.Order, error)
	OrderDetail(ctx context.Context, id int64) ([]models.Coil, error)
}

// BuilderHandler represents HTTP handler for order building
type BuilderHandler struct {
	svc    BuilderService
	orders OrderQueryService
}

// NewBuilderHandler creates new BuilderHandler instance
func NewBuilderHandler(svc BuilderService, orders OrderQueryService) *BuilderHandler {
	return &BuilderHandler{svc: svc, orders: orders}
}

// View returns builder of operator
// 200 — solicitud procesada;
// 401 — no autenticado;
// 502 — backend inalcanzable.
func (bh *BuilderHandler) View() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		v, err := bh.svc.View(r.Context(), acc)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

// Reload reloads available coils
// 200 — solicitud procesada;
// 401 — no autenticado;
// 502 — backend inalcanzable.
func (bh *BuilderHandler) Reload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		v, err := bh.svc.Reload(r.Context(), acc)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

type searchRequest struct {
	Text string `json:"texto"`
}

// Search sets search text of available list
// 200 — solicitud procesada;
// 400 — formato de solicitud inválido;
// 401 — no autenticado.
func (bh *BuilderHandler) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		var req searchRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(w, "bad request")
			return
		}
		defer r.Body.Close()

		writeJSON(w, http.StatusOK, bh.svc.Search(acc, req.Text))
	}
}

type selectRequest struct {
	CoilID int64               `json:"id_registro"`
	Origin service.SelectOrigin `json:"origen"`
}

// Select adds coil to working set
// 200 — solicitud procesada;
// 400 — formato de solicitud inválido;
// 401 — no autenticado;
// 404 — bobina no disponible;
// 422 — pedido en envío.
func (bh *BuilderHandler) Select() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		var req selectRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CoilID <= 0 {
			badRequest(w, "bad request")
			return
		}
		defer r.Body.Close()

		if req.Origin != service.SelectDrag {
			req.Origin = service.SelectClick
		}

		v, err := bh.svc.Select(acc, req.CoilID, req.Origin)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

// Deselect removes coil from working set
// 200 — solicitud procesada;
// 400 — id inválido;
// 401 — no autenticado;
// 422 — pedido en envío.
func (bh *BuilderHandler) Deselect() http.HandlerFunc {
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

		v, err := bh.svc.Deselect(acc, id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

type notesRequest struct {
	Notes string `json:"observaciones"`
}

// SetNotes sets observations of order
// 200 — solicitud procesada;
// 400 — formato de solicitud inválido;
// 401 — no autenticado;
// 422 — pedido en envío.
func (bh *BuilderHandler) SetNotes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		var req notesRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(w, "bad request")
			return
		}
		defer r.Body.Close()

		v, err := bh.svc.SetNotes(acc, req.Notes)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

// Submit creates order from working set
// 201 — pedido creado y pendiente de despacho;
// 401 — no autenticado;
// 422 — ninguna bobina seleccionada;
// 502 — backend inalcanzable o con error.
func (bh *BuilderHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		order, err := bh.svc.Submit(r.Context(), acc)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, order)
	}
}

// InProgress returns orders not yet attended
// 200 — solicitud procesada;
// 502 — backend inalcanzable o con error.
func (bh *BuilderHandler) InProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := bh.orders.ListOrdersInProgress(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orders)
	}
}

// Detail returns coils of order
// 200 — solicitud procesada;
// 400 — id inválido;
// 502 — backend inalcanzable o con error.
func (bh *BuilderHandler) Detail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "id inválido")
			return
		}

		coils, err := bh.orders.OrderDetail(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, coils)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rookgm/bobis/internal/models"
	"github.com/rookgm/bobis/internal/service"
)

type ReferenceService interface {
	Tables() []models.TableSchema
	View(ctx context.Context, acc models.Account) (*service.ReferenceView, error)
	SwitchTable(ctx context.Context, acc models.Account, kind models.TableKind) (*service.ReferenceView, error)
	AddRow(ctx context.Context, acc models.Account, draft map[string]any) (*service.ReferenceView, error)
	DeleteRow(ctx context.Context, acc models.Account, row models.ReferenceRow, confirmed bool) (*service.ReferenceView, error)
}

// ReferenceHandler represents HTTP handler for reference tables
type ReferenceHandler struct {
	svc ReferenceService
}

// NewReferenceHandler creates new ReferenceHandler instance
func NewReferenceHandler(svc ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{svc: svc}
}

// Tables returns schemas of reference tables
// 200 — solicitud procesada.
func (rh *ReferenceHandler) Tables() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rh.svc.Tables())
	}
}

// View returns reference screen of operator
// 200 — solicitud procesada;
// 401 — no autenticado;
// 502 — backend inalcanzable o con error.
func (rh *ReferenceHandler) View() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		v, err := rh.svc.View(r.Context(), acc)
		if err != nil {
			writeErrorWithView(w, err, v)
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

type switchTableRequest struct {
	Table models.TableKind `json:"tabla"`
}

// SwitchTable opens reference table
// 200 — solicitud procesada;
// 400 — formato de solicitud inválido;
// 401 — no autenticado;
// 404 — tabla desconocida;
// 502 — backend inalcanzable o con error.
func (rh *ReferenceHandler) SwitchTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		var req switchTableRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Table == "" {
			badRequest(w, "bad request")
			return
		}
		defer r.Body.Close()

		v, err := rh.svc.SwitchTable(r.Context(), acc, req.Table)
		if err != nil {
			writeErrorWithView(w, err, v)
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

// AddRow inserts row into open table
// 201 — registro agregado;
// 400 — formato de solicitud inválido;
// 401 — no autenticado;
// 422 — campos requeridos incompletos;
// 502 — backend inalcanzable o con error.
func (rh *ReferenceHandler) AddRow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		var draft map[string]any

		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			badRequest(w, "bad request")
			return
		}
		defer r.Body.Close()

		if draft == nil {
			draft = map[string]any{}
		}

		v, err := rh.svc.AddRow(r.Context(), acc, draft)
		if err != nil {
			writeErrorWithView(w, err, v)
			return
		}

		writeJSON(w, http.StatusCreated, v)
	}
}

// DeleteRow deletes row of open table, requires ?confirmar=true
// 200 — registro eliminado;
// 400 — formato de solicitud inválido;
// 401 — no autenticado;
// 422 — registro sin id;
// 428 — falta confirmación;
// 502 — backend inalcanzable o con error.
func (rh *ReferenceHandler) DeleteRow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		var row models.ReferenceRow

		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&row); err != nil {
			badRequest(w, "bad request")
			return
		}
		defer r.Body.Close()

		confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirmar"))

		v, err := rh.svc.DeleteRow(r.Context(), acc, row, confirmed)
		if err != nil {
			writeErrorWithView(w, err, v)
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rookgm/bobis/internal/gateway"
	"github.com/rookgm/bobis/internal/models"
)

type CoilService interface {
	// List returns one page of coils
	List(ctx context.Context, q models.CoilQuery) (*models.CoilPage, error)
	// Options returns combo choices of intake form
	Options(ctx context.Context) (*models.CoilOptions, error)
	// Register registers incoming coil
	Register(ctx context.Context, in *models.CoilIntake) (int64, error)
	// Update changes editable fields of coil
	Update(ctx context.Context, id int64, fields map[string]any) error
}

// CoilHandler represents HTTP handler for coil registry and intake
type CoilHandler struct {
	svc CoilService
}

// NewCoilHandler creates new CoilHandler instance
func NewCoilHandler(svc CoilService) *CoilHandler {
	return &CoilHandler{svc: svc}
}

// ListCoils returns one page of coils
// 200 — solicitud procesada;
// 400 — filtro estado inválido;
// 502 — backend inalcanzable.
func (ch *CoilHandler) ListCoils() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := models.CoilQuery{
			Page:    intQuery(r, "page", 1),
			PerPage: intQuery(r, "per_page", gateway.DefaultPerPage),
			Search:  r.URL.Query().Get("search"),
		}
		if raw := r.URL.Query().Get("estado"); raw != "" {
			state, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				badRequest(w, "estado inválido")
				return
			}
			q.State = &state
		}

		page, err := ch.svc.List(r.Context(), q)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

// Options returns intake combo choices
// 200 — solicitud procesada;
// 502 — backend inalcanzable.
func (ch *CoilHandler) Options() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := ch.svc.Options(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, opts)
	}
}

type registerCoilResponse struct {
	ID int64 `json:"id_registro"`
}

// RegisterCoil registers incoming coil
// 201 — bobina ingresada;
// 400 — formato de solicitud inválido;
// 422 — formulario rechazado;
// 502 — backend inalcanzable o con error.
func (ch *CoilHandler) RegisterCoil() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.CoilIntake

		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			badRequest(w, "bad request")
			return
		}
		defer r.Body.Close()

		id, err := ch.svc.Register(r.Context(), &in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, registerCoilResponse{ID: id})
	}
}

// UpdateCoil partially updates coil
// 204 — bobina actualizada;
// 400 — formato de solicitud inválido;
// 422 — campo no editable;
// 502 — backend inalcanzable o con error.
func (ch *CoilHandler) UpdateCoil() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "id inválido")
			return
		}

		var fields map[string]any

		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || len(fields) == 0 {
			badRequest(w, "bad request")
			return
		}
		defer r.Body.Close()

		if err := ch.svc.Update(r.Context(), id, fields); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rookgm/bobis/internal/auth"
	"github.com/rookgm/bobis/internal/logger"
	"github.com/rookgm/bobis/internal/models"
	"go.uber.org/zap"
)

const msgInternalError = "error interno"

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"campo,omitempty"`
	View  any    `json:"vista,omitempty"`
}

// writeJSON writes v with status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Debug("encode response", zap.Error(err))
	}
}

// writeError maps err to status code:
// 401 — no autenticado;
// 404 — recurso o tabla inexistente;
// 409 — conflicto con datos existentes;
// 422 — entrada rechazada localmente;
// 428 — falta confirmación;
// 502 — backend inalcanzable o con error;
// 500 — cualquier otro error.
func writeError(w http.ResponseWriter, err error) {
	writeErrorWithView(w, err, nil)
}

// writeErrorWithView writes error together with current screen state
func writeErrorWithView(w http.ResponseWriter, err error, view any) {
	resp := errorResponse{Error: err.Error(), View: view}
	status := http.StatusInternalServerError

	var (
		ve *models.ValidationError
		ce *models.ConnectionError
		se *models.ServerError
	)
	switch {
	case errors.As(err, &ve):
		status = http.StatusUnprocessableEntity
		resp.Error = ve.Message
		resp.Field = ve.Field
	case errors.As(err, &ce):
		status = http.StatusBadGateway
		resp.Error = models.MsgConnectionFailed
	case errors.As(err, &se):
		status = http.StatusBadGateway
		resp.Error = se.Error()
	case errors.Is(err, models.ErrUnauthenticated):
		status = http.StatusUnauthorized
		resp.Error = "no autenticado"
	case errors.Is(err, models.ErrDataNotFound), errors.Is(err, models.ErrUnknownTable):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrConfirmationRequired):
		status = http.StatusPreconditionRequired
		resp.Error = "Confirma la eliminación del registro"
	case errors.Is(err, models.ErrConflictData):
		status = http.StatusConflict
	default:
		logger.Log.Error("internal error", zap.Error(err))
		resp.Error = msgInternalError
	}

	writeJSON(w, status, resp)
}

// accountFrom returns account put into context by auth middleware
func accountFrom(r *http.Request) (models.Account, bool) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		return models.Account{}, false
	}
	return *acc, true
}

// idParam parses positive integer url parameter
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// intQuery parses integer query parameter, returns def when absent or invalid
func intQuery(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func unauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "no autenticado"})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

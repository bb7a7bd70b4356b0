package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rookgm/bobis/internal/auth"
	"github.com/rookgm/bobis/internal/models"
)

var operator = models.Account{ID: "oid-1", UserID: 7, Name: "Ana"}

// withAccount puts acc into request context as auth middleware does
func withAccount(req *http.Request, acc *models.Account) *http.Request {
	if acc == nil {
		return req
	}
	return req.WithContext(auth.WithAccount(req.Context(), acc, "token"))
}

// withURLParam sets chi url parameter on request
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

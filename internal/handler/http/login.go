package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rookgm/bobis/config"
	"github.com/rookgm/bobis/internal/auth"
)

// Login redirects browser to identity provider
// 302 — redirección al proveedor de identidad.
func Login(cfg config.AuthConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, auth.LoginURL(cfg, uuid.NewString()), http.StatusFound)
	}
}

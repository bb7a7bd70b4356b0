package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/rookgm/bobis/internal/auth"
	"github.com/rookgm/bobis/internal/logger"
	"github.com/rookgm/bobis/internal/service"
	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

// LoginPath is where unauthenticated browser navigations are sent
const LoginPath = "/login"

// Auth verifies bearer token and puts account into request context.
// Token is read from Authorization header, or from "token" query parameter
// for websocket upgrades.
func Auth(ts service.TokenService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthenticated(w, r)
				return
			}

			acc, err := ts.VerifyToken(token)
			if err != nil {
				logger.Log.Debug("token rejected", zap.String("path", r.URL.Path), zap.Error(err))
				unauthenticated(w, r)
				return
			}

			ctx := auth.WithAccount(r.Context(), acc, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
	}
	// browsers cannot set headers on websocket handshake
	if websocket.IsWebSocketUpgrade(r) {
		return r.URL.Query().Get("token")
	}
	return ""
}

// unauthenticated redirects browser navigations to login, API calls get 401
func unauthenticated(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, LoginPath, http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "no autenticado"})
}

package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rookgm/bobis/internal/logger"
	"github.com/rookgm/bobis/internal/socket"
	"go.uber.org/zap"
)

// Broadcaster serves pending order updates over a connection
type Broadcaster interface {
	Serve(id string, conn socket.Conn)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ServeWs upgrades request to websocket and streams pending orders
// 101 — conexión establecida;
// 401 — no autenticado.
func ServeWs(b Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := accountFrom(r)
		if !ok {
			unauthorized(w)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Debug("upgrade websocket", zap.String("operator", acc.ID), zap.Error(err))
			return
		}

		b.Serve(acc.ID, conn)
	}
}

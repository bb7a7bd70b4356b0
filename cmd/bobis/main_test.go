package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rookgm/bobis/internal/auth"
	"github.com/rookgm/bobis/internal/models"
	"github.com/rookgm/bobis/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGateways(t *testing.T) {
	authHeaders := make(chan string, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeaders <- r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	gw, monitorGW, err := newGateways(srv.URL + "/api")
	require.NoError(t, err)

	t.Run("monitor_online_without_operator_token", func(t *testing.T) {
		monitor := worker.NewConnectivityMonitor(monitorGW, time.Minute)

		assert.True(t, monitor.Probe(context.Background()))
		assert.True(t, monitor.Online())
		assert.Empty(t, <-authHeaders)
	})

	t.Run("operator_gateway_forwards_token", func(t *testing.T) {
		ctx := auth.WithAccount(context.Background(), &models.Account{ID: "oid-1"}, "tok")

		require.NoError(t, gw.Ping(ctx))
		assert.Equal(t, "Bearer tok", <-authHeaders)
	})

	t.Run("operator_gateway_requires_token", func(t *testing.T) {
		err := gw.Ping(context.Background())

		assert.ErrorIs(t, err, models.ErrUnauthenticated)
	})
}

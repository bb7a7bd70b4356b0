package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rookgm/bobis/internal/logger"
	"go.uber.org/zap"
)

const probeTimeout = 5 * time.Second

// Prober checks backend connectivity
type Prober interface {
	Ping(ctx context.Context) error
}

// ConnectivityMonitor is worker probes backend at fixed interval
type ConnectivityMonitor struct {
	prober   Prober
	interval time.Duration
	online   atomic.Bool
}

// NewConnectivityMonitor create new connectivity monitor
func NewConnectivityMonitor(prober Prober, interval time.Duration) *ConnectivityMonitor {
	return &ConnectivityMonitor{prober: prober, interval: interval}
}

// Online returns result of last probe
func (cm *ConnectivityMonitor) Online() bool {
	return cm.online.Load()
}

// Probe checks backend once and stores result
func (cm *ConnectivityMonitor) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := cm.prober.Ping(ctx)
	online := err == nil

	if prev := cm.online.Swap(online); prev != online {
		if online {
			logger.Log.Info("backend is reachable")
		} else {
			logger.Log.Warn("backend is unreachable", zap.Error(err))
		}
	}
	return online
}

// Run probes backend until ctx is done
func (cm *ConnectivityMonitor) Run(ctx context.Context) {
	cm.Probe(ctx)

	ticker := time.NewTicker(cm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("connectivity monitor is done")
			return
		case <-ticker.C:
			cm.Probe(ctx)
		}
	}
}

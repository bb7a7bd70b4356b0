package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeProber struct {
	calls atomic.Int32
	err   atomic.Value
}

func (f *fakeProber) Ping(ctx context.Context) error {
	f.calls.Add(1)
	if err, ok := f.err.Load().(error); ok && err != nil {
		return err
	}
	return nil
}

func TestConnectivityMonitor_Probe(t *testing.T) {
	fp := &fakeProber{}
	cm := NewConnectivityMonitor(fp, time.Minute)

	assert.False(t, cm.Online())

	assert.True(t, cm.Probe(context.Background()))
	assert.True(t, cm.Online())

	fp.err.Store(errors.New("connection refused"))
	assert.False(t, cm.Probe(context.Background()))
	assert.False(t, cm.Online())
}

func TestConnectivityMonitor_Run(t *testing.T) {
	fp := &fakeProber{}
	cm := NewConnectivityMonitor(fp, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cm.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return fp.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	assert.True(t, cm.Online())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}

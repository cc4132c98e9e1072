package server

import (
	"testing"
	"time"

	"github.com/nikhs247/edgevision/internal/kernel"
)

func TestLifecycleStartAndShutdown(t *testing.T) {
	srv := NewComputeServer("device-1", kernel.NewThreshold(0.5), nil, nil, false, "", "")
	lc := NewLifecycle("127.0.0.1:0", srv)

	ready := make(chan struct{})
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- lc.Start(ready)
	}()

	select {
	case <-ready:
	case <-time.After(2 * time.Second):
		t.Fatalf("listener never became ready")
	}

	lc.Shutdown()

	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("expected a clean return from Serve, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Serve never returned after Shutdown")
	}
}

func TestLifecycleShutdownIsIdempotent(t *testing.T) {
	srv := NewComputeServer("device-1", kernel.NewThreshold(0.5), nil, nil, false, "", "")
	lc := NewLifecycle("127.0.0.1:0", srv)

	ready := make(chan struct{})
	go lc.Start(ready)
	<-ready

	lc.Shutdown()
	lc.Shutdown() // must not panic or double-close anything
}

package server

import (
	"net"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/nikhs247/edgevision/proto/visionstream"
)

const shutdownGraceDeadline = 3 * time.Second

// Lifecycle owns the listener and the grpc.Server built around one
// ComputeServer. grpc-go multiplexes every stream's I/O through the
// single Serve call started by Start, which plays the role the
// source's completion-queue pump thread plays.
type Lifecycle struct {
	addr string
	srv  *grpc.Server

	shuttingDown atomic.Bool
}

// NewLifecycle registers srv against a fresh grpc.Server bound to
// addr, ready to Start.
func NewLifecycle(addr string, srv visionstream.VisionStreamServer) *Lifecycle {
	grpcServer := grpc.NewServer()
	visionstream.RegisterVisionStreamServer(grpcServer, srv)
	reflection.Register(grpcServer)

	return &Lifecycle{addr: addr, srv: grpcServer}
}

// Start binds the listener, signals readiness on ready if non-nil,
// then blocks serving RPCs until Shutdown stops the server. Returns
// whatever error grpc.Server.Serve returns, which is nil after a
// clean Shutdown.
func (l *Lifecycle) Start(ready chan<- struct{}) error {
	lis, err := net.Listen("tcp", l.addr)
	if err != nil {
		return err
	}

	if ready != nil {
		close(ready)
	}

	return l.srv.Serve(lis)
}

// Shutdown requests a graceful stop, guarded so it runs exactly once.
// It waits up to three seconds for in-flight RPCs to finish, then
// forces a stop: Go has no thread-detach primitive, but a forceful
// Stop plus letting the GracefulStop goroutine leak (it exits once
// Stop closes the listener) gives the same outcome, letting the
// process exit regardless of how long a stream's last write takes.
func (l *Lifecycle) Shutdown() {
	if !l.shuttingDown.CompareAndSwap(false, true) {
		return
	}

	done := make(chan struct{})
	go func() {
		l.srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(shutdownGraceDeadline):
		l.srv.Stop()
	}
}

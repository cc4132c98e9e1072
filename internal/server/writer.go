package server

import (
	"fmt"

	"github.com/nikhs247/edgevision/proto/visionstream"
)

// streamSender is the subset of visionstream.VisionStream_StreamServer
// the writer goroutine needs.
type streamSender interface {
	Send(*visionstream.ServerMessage) error
}

// writer owns the stream and is the only goroutine that calls Send on
// it. Both the command reader and the status ticker enqueue messages
// here instead of writing directly, which replaces a write-mutex held
// across a blocking Send with a single total order enforced by channel
// delivery.
type writer struct {
	stream streamSender
	out    chan *visionstream.ServerMessage
	errc   chan error
	done   chan struct{}
}

func newWriter(stream streamSender) *writer {
	return &writer{
		stream: stream,
		out:    make(chan *visionstream.ServerMessage, 8),
		errc:   make(chan error, 1),
		done:   make(chan struct{}),
	}
}

// run drains out until it is closed or a write fails, then reports the
// first error (or nil) on errc and closes done.
func (w *writer) run() {
	defer close(w.done)
	for msg := range w.out {
		if err := w.stream.Send(msg); err != nil {
			select {
			case w.errc <- fmt.Errorf("%w: %w", ErrWriteClosed, err):
			default:
			}
			// Drain remaining sends without writing, so producers
			// calling send() don't block forever on a dead stream.
			for range w.out {
			}
			return
		}
	}
	select {
	case w.errc <- nil:
	default:
	}
}

// send enqueues msg. Safe to call from multiple goroutines; never
// blocks past the channel's buffer once the writer has exited, and is a
// no-op once close has returned.
func (w *writer) send(msg *visionstream.ServerMessage) {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.out <- msg:
	case <-w.done:
	}
}

// close signals no more sends are coming and waits for run to exit,
// returning the first write error observed, if any.
func (w *writer) close() error {
	close(w.out)
	<-w.done
	select {
	case err := <-w.errc:
		return err
	default:
		return nil
	}
}

package server

import (
	"errors"
	"sync"
	"testing"

	"github.com/nikhs247/edgevision/proto/visionstream"
)

type fakeStreamSender struct {
	mu       sync.Mutex
	sent     []*visionstream.ServerMessage
	failAt   int // Send fails starting at this 1-indexed call, 0 = never
	failWith error
	calls    int
}

func (f *fakeStreamSender) Send(msg *visionstream.ServerMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failAt != 0 && f.calls >= f.failAt {
		return f.failWith
	}
	f.sent = append(f.sent, msg)
	return nil
}

func statusMsg(deviceID string) *visionstream.ServerMessage {
	return &visionstream.ServerMessage{Payload: &visionstream.ServerMessage_DeviceStatus{
		DeviceStatus: &visionstream.DeviceStatus{DeviceId: deviceID},
	}}
}

func TestWriterDeliversInSendOrder(t *testing.T) {
	fake := &fakeStreamSender{}
	w := newWriter(fake)
	go w.run()

	for i := 0; i < 5; i++ {
		w.send(statusMsg("device"))
	}

	if err := w.close(); err != nil {
		t.Fatalf("unexpected writer error: %v", err)
	}
	if len(fake.sent) != 5 {
		t.Fatalf("expected 5 delivered messages, got %d", len(fake.sent))
	}
}

func TestWriterDrainsWithoutDeadlockAfterSendFailure(t *testing.T) {
	wantErr := errors.New("boom")
	fake := &fakeStreamSender{failAt: 1, failWith: wantErr}
	w := newWriter(fake)
	go w.run()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			w.send(statusMsg("device"))
		}
	}()

	select {
	case <-done:
	default:
	}
	<-done

	if err := w.close(); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestWriterSendAfterCloseIsSafe(t *testing.T) {
	fake := &fakeStreamSender{}
	w := newWriter(fake)
	go w.run()

	w.send(statusMsg("device"))
	if err := w.close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// send after close must not block or panic; w.done is already closed.
	w.send(statusMsg("device"))
}

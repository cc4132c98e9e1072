package server

import (
	"context"
	"testing"

	"github.com/nikhs247/edgevision/internal/kernel"
	"github.com/nikhs247/edgevision/proto/visionstream"
)

func newTestServer() *ComputeServer {
	return NewComputeServer("device-1", kernel.NewThreshold(0.5), nil, nil, false, "", "")
}

func TestHandleControlStopStreamingSendsTerminateAck(t *testing.T) {
	fake := &fakeStreamSender{}
	w := newWriter(fake)
	go w.run()

	s := newTestServer()
	if cont := s.handleControl(w, visionstream.ControlAction_STOP_STREAMING); cont {
		t.Fatalf("expected STOP_STREAMING to stop the read loop")
	}

	if err := w.close(); err != nil {
		t.Fatalf("unexpected writer error: %v", err)
	}
	if len(fake.sent) != 1 {
		t.Fatalf("expected exactly one reply, got %d", len(fake.sent))
	}
	resp, ok := fake.sent[0].Payload.(*visionstream.ServerMessage_ConfigResponse)
	if !ok {
		t.Fatalf("expected a config_response, got %T", fake.sent[0].Payload)
	}
	if resp.ConfigResponse.Message != visionstream.TerminateAck {
		t.Fatalf("expected terminate_ack, got %q", resp.ConfigResponse.Message)
	}
}

func TestHandleControlStopStreamingRequestsShutdown(t *testing.T) {
	fake := &fakeStreamSender{}
	w := newWriter(fake)
	go w.run()
	defer w.close()

	s := newTestServer()
	s.handleControl(w, visionstream.ControlAction_STOP_STREAMING)

	select {
	case <-s.ShutdownRequested():
	default:
		t.Fatalf("expected ShutdownRequested to be closed after STOP_STREAMING")
	}
}

func TestHandleControlRebootRequestsShutdown(t *testing.T) {
	fake := &fakeStreamSender{}
	w := newWriter(fake)
	go w.run()
	defer w.close()

	s := newTestServer()
	s.handleControl(w, visionstream.ControlAction_REBOOT)

	select {
	case <-s.ShutdownRequested():
	default:
		t.Fatalf("expected ShutdownRequested to be closed after REBOOT")
	}
}

func TestHandleControlStartStreamingContinuesWithNoWakeupTarget(t *testing.T) {
	fake := &fakeStreamSender{}
	w := newWriter(fake)
	go w.run()
	defer w.close()

	s := newTestServer()
	if cont := s.handleControl(w, visionstream.ControlAction_START_STREAMING); !cont {
		t.Fatalf("expected START_STREAMING to continue the read loop")
	}
}

func TestHandleConfigRequestUpdatesThresholdAndAcks(t *testing.T) {
	fake := &fakeStreamSender{}
	w := newWriter(fake)
	go w.run()

	threshold := kernel.NewThreshold(0.5)
	s := NewComputeServer("device-1", threshold, nil, nil, false, "", "")

	s.handleConfigRequest(w, &visionstream.ConfigRequest{Threshold: 0.8})

	if err := w.close(); err != nil {
		t.Fatalf("unexpected writer error: %v", err)
	}
	if threshold.Load() != 0.8 {
		t.Fatalf("expected threshold 0.8, got %v", threshold.Load())
	}
	if len(fake.sent) != 1 {
		t.Fatalf("expected one config_response, got %d", len(fake.sent))
	}
	resp := fake.sent[0].Payload.(*visionstream.ServerMessage_ConfigResponse)
	if !resp.ConfigResponse.Success {
		t.Fatalf("expected success=true")
	}
}

func TestSubmitDetectionRejectsEmptyPayload(t *testing.T) {
	s := newTestServer()
	resp, err := s.SubmitDetection(context.Background(), &visionstream.SubmitDetectionRequest{Json: "  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected failure for empty payload")
	}
}

func TestSubmitDetectionAcceptsValidPayload(t *testing.T) {
	s := newTestServer()
	resp, err := s.SubmitDetection(context.Background(), &visionstream.SubmitDetectionRequest{
		Json: `{"bbox":[0.1,0.1,0.2,0.2],"class":"cat"}`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success for a well-formed payload, got message %q", resp.Message)
	}
}

func TestWakeUpAcksWithoutError(t *testing.T) {
	s := newTestServer()
	if _, err := s.WakeUp(context.Background(), &visionstream.WakeUpRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

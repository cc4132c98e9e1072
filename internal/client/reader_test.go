package client

import (
	"context"
	"io"
	"sync"
	"testing"

	"google.golang.org/grpc/metadata"

	"github.com/nikhs247/edgevision/proto/visionstream"
)

// fakeServerStream implements visionstream.VisionStream_StreamClient
// with a fixed queue of server messages, mirroring the scope of
// internal/server/writer_test.go's fakeStreamSender but for the read
// side of the stream.
type fakeServerStream struct {
	mu      sync.Mutex
	queue   []*visionstream.ServerMessage
	recvErr error
}

func (f *fakeServerStream) Send(*visionstream.Command) error { return nil }

func (f *fakeServerStream) Recv() (*visionstream.ServerMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queue) == 0 {
		if f.recvErr != nil {
			return nil, f.recvErr
		}
		return nil, io.EOF
	}
	msg := f.queue[0]
	f.queue = f.queue[1:]
	return msg, nil
}

func (f *fakeServerStream) Header() (metadata.MD, error) { return nil, nil }
func (f *fakeServerStream) Trailer() metadata.MD          { return nil }
func (f *fakeServerStream) CloseSend() error              { return nil }
func (f *fakeServerStream) Context() context.Context      { return context.Background() }
func (f *fakeServerStream) SendMsg(m interface{}) error   { return nil }
func (f *fakeServerStream) RecvMsg(m interface{}) error   { return nil }

func newTestClient(fake *fakeServerStream) *StreamClient {
	c := New("127.0.0.1:1", "")
	c.stream = fake
	c.readerDone = make(chan struct{})
	return c
}

func TestRunRaisesTerminateOnTerminateAck(t *testing.T) {
	fake := &fakeServerStream{queue: []*visionstream.ServerMessage{
		{Payload: &visionstream.ServerMessage_ConfigResponse{ConfigResponse: &visionstream.ConfigResponse{
			Success: true,
			Message: visionstream.TerminateAck,
		}}},
	}}
	c := newTestClient(fake)

	c.run()

	select {
	case <-c.Terminated():
	default:
		t.Fatalf("expected Terminated to fire after a terminate_ack")
	}
}

func TestRunPopulatesDetectionsFromDetectionResult(t *testing.T) {
	fake := &fakeServerStream{
		queue: []*visionstream.ServerMessage{
			{Payload: &visionstream.ServerMessage_DetectionResult{DetectionResult: &visionstream.DetectionResult{
				Json: `{"bbox":[0.1,0.1,0.2,0.2],"score":0.9,"class":"cat"}`,
			}}},
		},
		recvErr: io.EOF,
	}
	c := newTestClient(fake)

	c.run()

	results := c.PopDetections()
	if len(results) != 1 {
		t.Fatalf("expected one detection record, got %d", len(results))
	}
	if len(results[0].Boxes) != 1 {
		t.Fatalf("expected one box, got %d", len(results[0].Boxes))
	}
	box := results[0].Boxes[0]
	if box.Label != "cat" {
		t.Fatalf("expected label %q, got %q", "cat", box.Label)
	}
}

func TestRunIgnoresEmptyDetectionPayload(t *testing.T) {
	fake := &fakeServerStream{
		queue: []*visionstream.ServerMessage{
			{Payload: &visionstream.ServerMessage_DetectionResult{DetectionResult: &visionstream.DetectionResult{Json: ""}}},
		},
		recvErr: io.EOF,
	}
	c := newTestClient(fake)

	c.run()

	if results := c.PopDetections(); len(results) != 0 {
		t.Fatalf("expected no detections from an empty payload, got %d", len(results))
	}
}

func TestExtractJSONFieldReadsCanonicalJSONField(t *testing.T) {
	dr := &visionstream.DetectionResult{Json: `{"bbox":[0,0,1,1]}`}
	if got := extractJSONField(dr); got != dr.Json {
		t.Fatalf("expected %q, got %q", dr.Json, got)
	}
}

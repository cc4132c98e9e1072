// Package client implements the presenter side of the streaming
// channel: opening the bidirectional RPC, writing frames and control
// commands, and exposing thread-safe detection and remote-frame
// queues to the video loop.
package client

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/paulbellamy/ratecounter"
	"gocv.io/x/gocv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"

	"github.com/nikhs247/edgevision/proto/visionstream"
)

const channelReadyTimeout = 5 * time.Second

// StreamClient holds one channel to the compute peer.
type StreamClient struct {
	target       string
	wakeUpTarget string

	mu     sync.Mutex // serializes writes to stream, the source's write-mutex
	conn   *grpc.ClientConn
	stream visionstream.VisionStream_StreamClient
	cancel context.CancelFunc

	running    atomic.Bool
	readerDone chan struct{}

	terminateOnce sync.Once
	terminated    chan struct{}

	detections *detectionQueue
	frames     *frameQueue

	sentFrames      atomic.Uint64
	receivedResults atomic.Uint64
	rate            *ratecounter.RateCounter

	lastActivityMs atomic.Int64

	sessionID string
}

// New builds a client targeting the given peer. wakeUpTarget may be
// empty, in which case the "wakeup" command token is a no-op.
func New(target, wakeUpTarget string) *StreamClient {
	return &StreamClient{
		target:       target,
		wakeUpTarget: wakeUpTarget,
		detections:   newDetectionQueue(),
		frames:       newFrameQueue(),
		rate:         ratecounter.NewRateCounter(1 * time.Second),
		terminated:   make(chan struct{}),
		sessionID:    uuid.NewString(),
	}
}

// Start dials the peer, waits up to five seconds for the channel to
// become ready, opens the bidirectional stream and starts the reader
// task. Idempotent.
func (c *StreamClient) Start(ctx context.Context) error {
	if c.running.Load() {
		return nil
	}

	conn, err := grpc.Dial(c.target, grpc.WithInsecure())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrChannelUnready, err)
	}

	if !waitReady(conn, channelReadyTimeout) {
		conn.Close()
		return ErrChannelUnready
	}

	svc := visionstream.NewVisionStreamClient(conn)

	streamCtx, cancel := context.WithCancel(context.Background())
	stream, err := svc.Stream(streamCtx)
	if err != nil {
		cancel()
		conn.Close()
		return fmt.Errorf("%w: %v", ErrChannelUnready, err)
	}

	c.conn = conn
	c.stream = stream
	c.cancel = cancel
	c.readerDone = make(chan struct{})
	c.running.Store(true)

	log.Printf("[client] session %s streaming to %s", c.sessionID, c.target)
	go c.run()

	return nil
}

func waitReady(conn *grpc.ClientConn, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return true
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		ctx, cancel := context.WithTimeout(context.Background(), remaining)
		ok := conn.WaitForStateChange(ctx, state)
		cancel()
		if !ok {
			return false
		}
	}
}

// Stop signals writes-done, cancels the RPC context to unblock any
// pending read, waits up to two seconds for the reader to exit and
// closes the connection. Idempotent.
func (c *StreamClient) Stop() {
	if !c.running.Swap(false) {
		return
	}

	c.mu.Lock()
	_ = c.stream.CloseSend()
	c.mu.Unlock()

	c.cancel()

	select {
	case <-c.readerDone:
	case <-time.After(2 * time.Second):
	}

	c.conn.Close()
}

// SendCommand translates text into the corresponding typed command.
// "wakeup" is a one-shot unary RPC to the wake-up target and never
// touches the stream. Returns false if not running or if the
// underlying write failed (in which case running is cleared).
func (c *StreamClient) SendCommand(text string) bool {
	if text == "wakeup" {
		if c.wakeUpTarget == "" {
			return true
		}
		caller := &WakeUpCaller{Target: c.wakeUpTarget}
		return caller.Call(context.Background()) == nil
	}

	if !c.running.Load() {
		return false
	}

	cmd := commandFromToken(text)

	c.mu.Lock()
	err := c.stream.Send(cmd)
	c.mu.Unlock()

	if err != nil {
		c.running.Store(false)
		log.Printf("[client] %v", fmt.Errorf("%w: %v", ErrWriteClosed, err))
		return false
	}
	c.lastActivityMs.Store(time.Now().UnixMilli())
	return true
}

// Forward writes cmd to the peer verbatim, for a handler relaying
// commands it received on one stream onto an upstream session of its
// own. Returns false if not running or if the write failed.
func (c *StreamClient) Forward(cmd *visionstream.Command) bool {
	if !c.running.Load() {
		return false
	}

	c.mu.Lock()
	err := c.stream.Send(cmd)
	c.mu.Unlock()

	if err != nil {
		c.running.Store(false)
		log.Printf("[client] forward: %v", fmt.Errorf("%w: %v", ErrWriteClosed, err))
		return false
	}
	c.lastActivityMs.Store(time.Now().UnixMilli())
	return true
}

func commandFromToken(text string) *visionstream.Command {
	switch text {
	case "start_streaming":
		return &visionstream.Command{Payload: &visionstream.Command_Control{Control: visionstream.ControlAction_START_STREAMING}}
	case "stop_streaming":
		return &visionstream.Command{Payload: &visionstream.Command_Control{Control: visionstream.ControlAction_STOP_STREAMING}}
	case "reboot", "32":
		return &visionstream.Command{Payload: &visionstream.Command_Control{Control: visionstream.ControlAction_REBOOT}}
	default:
		return &visionstream.Command{Payload: &visionstream.Command_DetectionResult{DetectionResult: text}}
	}
}

// SendFrame JPEG-encodes img and writes a camera_frame command.
func (c *StreamClient) SendFrame(img gocv.Mat, cameraID string) bool {
	if !c.running.Load() {
		return false
	}

	buf, err := gocv.IMEncode(".jpg", img)
	if err != nil {
		return false
	}
	defer buf.Close()

	cmd := &visionstream.Command{Payload: &visionstream.Command_Frame{Frame: &visionstream.Frame{
		ImageData: buf.GetBytes(),
		Width:     int32(img.Cols()),
		Height:    int32(img.Rows()),
		Format:    "jpeg",
		CameraId:  cameraID,
		Timestamp: float64(time.Now().UnixNano()) / 1e9,
	}}}

	c.mu.Lock()
	sendErr := c.stream.Send(cmd)
	c.mu.Unlock()

	if sendErr != nil {
		c.running.Store(false)
		log.Printf("[client] %v", fmt.Errorf("%w: %v", ErrWriteClosed, sendErr))
		return false
	}

	c.sentFrames.Add(1)
	c.lastActivityMs.Store(time.Now().UnixMilli())
	return true
}

// PopDetections atomically swaps out and returns the accumulated
// detection records.
func (c *StreamClient) PopDetections() []Detection {
	return c.detections.popAll()
}

// PopRemoteFrame returns one buffered remote frame if present.
func (c *StreamClient) PopRemoteFrame() (gocv.Mat, bool) {
	return c.frames.pop()
}

// SentFrames returns the monotonic count of frames successfully written.
func (c *StreamClient) SentFrames() uint64 { return c.sentFrames.Load() }

// ReceivedResults returns the monotonic count of detection results read.
func (c *StreamClient) ReceivedResults() uint64 { return c.receivedResults.Load() }

// Rate returns the current received-results throughput, per second.
func (c *StreamClient) Rate() int64 { return c.rate.Rate() }

// LastActivityMs returns the unix-millisecond timestamp of the most
// recent successfully written command or frame, or zero if none yet.
func (c *StreamClient) LastActivityMs() int64 { return c.lastActivityMs.Load() }

// Terminated returns a channel closed once a terminate_ack has been observed.
func (c *StreamClient) Terminated() <-chan struct{} { return c.terminated }

func (c *StreamClient) raiseTerminate() {
	c.terminateOnce.Do(func() { close(c.terminated) })
}

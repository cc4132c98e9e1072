// Package server implements the compute-side streaming RPC: one
// handler instance per connected peer, a status-ticker sender, and the
// two side-channel unary RPCs.
package server

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/paulbellamy/ratecounter"
	"gocv.io/x/gocv"

	"github.com/nikhs247/edgevision/internal/client"
	"github.com/nikhs247/edgevision/internal/detectjson"
	"github.com/nikhs247/edgevision/internal/kernel"
	"github.com/nikhs247/edgevision/proto/visionstream"
)

const statusInterval = 1 * time.Second

// ComputeServer implements visionstream.VisionStreamServer. One
// instance is shared across every RPC; per-call state (the writer,
// the running flag, the optional forward client) lives on the stack of
// each Stream invocation.
type ComputeServer struct {
	visionstream.UnimplementedVisionStreamServer

	deviceID     string
	threshold    *kernel.Threshold
	detector     *kernel.Detector
	enhancer     *kernel.Enhancer
	lowlightOnly bool

	wakeUpTarget  string
	forwardTarget string

	rate        *ratecounter.RateCounter
	latencyBits atomic.Uint64

	shutdownRequested chan struct{}
	shutdownOnce      sync.Once
}

// NewComputeServer wires a server around an already-initialized
// detector or enhancer (exactly one of which is used, chosen by
// lowlightOnly) and the shared detection threshold.
func NewComputeServer(deviceID string, threshold *kernel.Threshold, detector *kernel.Detector, enhancer *kernel.Enhancer, lowlightOnly bool, wakeUpTarget, forwardTarget string) *ComputeServer {
	return &ComputeServer{
		deviceID:          deviceID,
		threshold:         threshold,
		detector:          detector,
		enhancer:          enhancer,
		lowlightOnly:      lowlightOnly,
		wakeUpTarget:      wakeUpTarget,
		forwardTarget:     forwardTarget,
		rate:              ratecounter.NewRateCounter(1 * time.Second),
		shutdownRequested: make(chan struct{}),
	}
}

// ShutdownRequested returns a channel closed the moment a peer sends
// STOP_STREAMING or REBOOT. cmd/compute selects on it alongside the OS
// signal channel so a peer-initiated stop tears down the process the
// same way an operator's Ctrl-C does, instead of leaving grpc.Serve
// running with no more streams to serve.
func (s *ComputeServer) ShutdownRequested() <-chan struct{} {
	return s.shutdownRequested
}

func (s *ComputeServer) requestShutdown() {
	s.shutdownOnce.Do(func() { close(s.shutdownRequested) })
}

// Stream serves one bi-directional RPC for the lifetime of one peer
// connection. It never returns a non-nil error: a failed write or a
// closed peer both end the handler cleanly, since the peer has already
// gone away by the time either is observed.
func (s *ComputeServer) Stream(stream visionstream.VisionStream_StreamServer) error {
	w := newWriter(stream)
	go w.run()

	var running atomic.Bool
	running.Store(true)

	senderDone := make(chan struct{})
	go s.runStatusSender(stream.Context(), w, &running, senderDone)

	var forward *client.StreamClient
	if s.forwardTarget != "" {
		forward = client.New(s.forwardTarget, "")
		if err := forward.Start(stream.Context()); err != nil {
			log.Printf("[server] forward target %s unreachable: %v", s.forwardTarget, err)
			forward = nil
		}
	}

	for running.Load() {
		cmd, err := stream.Recv()
		if err != nil {
			log.Printf("[server] stream closed: %v", fmt.Errorf("%w: %v", ErrReadClosed, err))
			break
		}

		if forward != nil {
			forward.Forward(cmd)
		}

		switch payload := cmd.Payload.(type) {
		case *visionstream.Command_Control:
			if !s.handleControl(w, payload.Control) {
				running.Store(false)
			}
		case *visionstream.Command_Heartbeat:
			log.Printf("[server] heartbeat ts=%.3f", payload.Heartbeat.GetTimestamp())
		case *visionstream.Command_Frame:
			s.handleFrame(w, payload.Frame)
		case *visionstream.Command_ConfigRequest:
			s.handleConfigRequest(w, payload.ConfigRequest)
		case *visionstream.Command_DetectionResult:
			log.Printf("[server] free-text command ignored: %q", payload.DetectionResult)
		}
	}

	running.Store(false)
	<-senderDone
	if err := w.close(); err != nil {
		log.Printf("[server] writer exited: %v", err)
	}
	if forward != nil {
		forward.Stop()
	}
	return nil
}

// handleControl returns false when the caller should stop the read loop.
func (s *ComputeServer) handleControl(w *writer, action visionstream.ControlAction) bool {
	switch action {
	case visionstream.ControlAction_STOP_STREAMING, visionstream.ControlAction_REBOOT:
		w.send(&visionstream.ServerMessage{Payload: &visionstream.ServerMessage_ConfigResponse{
			ConfigResponse: &visionstream.ConfigResponse{Success: true, Message: visionstream.TerminateAck},
		}})
		s.requestShutdown()
		return false
	case visionstream.ControlAction_START_STREAMING:
		if s.wakeUpTarget != "" {
			caller := &client.WakeUpCaller{Target: s.wakeUpTarget}
			go func() {
				if err := caller.Call(context.Background()); err != nil {
					log.Printf("[server] wake-up call to %s failed: %v", s.wakeUpTarget, err)
				}
			}()
		}
		return true
	default:
		return true
	}
}

func (s *ComputeServer) handleFrame(w *writer, f *visionstream.Frame) {
	mat, err := gocv.IMDecode(f.GetImageData(), gocv.IMReadColor)
	if err != nil {
		log.Printf("[server] %v", fmt.Errorf("%w: %v", kernel.ErrDecodeFailed, err))
		return
	}
	defer mat.Close()
	if mat.Empty() {
		return
	}

	t0 := time.Now()

	if s.lowlightOnly {
		enhanced, err := s.enhancer.Enhance(mat)
		if err != nil {
			log.Printf("[server] enhance failed: %v", err)
			return
		}
		defer enhanced.Close()

		buf, err := gocv.IMEncodeWithParams(".jpg", enhanced, []int{gocv.IMWriteJpegQuality, 85})
		if err != nil {
			log.Printf("[server] re-encode failed: %v", err)
			return
		}
		defer buf.Close()

		s.recordFrame(t0)
		w.send(&visionstream.ServerMessage{Payload: &visionstream.ServerMessage_Frame{Frame: &visionstream.Frame{
			ImageData: buf.GetBytes(),
			Width:     f.GetWidth(),
			Height:    f.GetHeight(),
			Format:    "jpeg",
			CameraId:  f.GetCameraId(),
			Timestamp: f.GetTimestamp(),
		}}})
		return
	}

	payload, _, err := s.detector.Infer(mat, false)
	if err != nil {
		log.Printf("[server] inference failed: %v", err)
		return
	}

	s.recordFrame(t0)
	w.send(&visionstream.ServerMessage{Payload: &visionstream.ServerMessage_DetectionResult{DetectionResult: &visionstream.DetectionResult{
		Json:           string(payload),
		CameraId:       f.GetCameraId(),
		FrameTimestamp: f.GetTimestamp(),
	}}})
}

func (s *ComputeServer) handleConfigRequest(w *writer, cr *visionstream.ConfigRequest) {
	s.threshold.Store(cr.GetThreshold())
	w.send(&visionstream.ServerMessage{Payload: &visionstream.ServerMessage_ConfigResponse{
		ConfigResponse: &visionstream.ConfigResponse{Success: true},
	}})
}

func (s *ComputeServer) recordFrame(started time.Time) {
	s.rate.Incr(1)
	latencyMs := float64(time.Since(started).Microseconds()) / 1000.0
	s.latencyBits.Store(math.Float64bits(latencyMs))
}

func (s *ComputeServer) runStatusSender(ctx context.Context, w *writer, running *atomic.Bool, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !running.Load() {
				return
			}
			w.send(&visionstream.ServerMessage{Payload: &visionstream.ServerMessage_DeviceStatus{DeviceStatus: &visionstream.DeviceStatus{
				DeviceId:  s.deviceID,
				State:     visionstream.DeviceState_GRPC_READY,
				FrameRate: float64(s.rate.Rate()),
				LatencyMs: math.Float64frombits(s.latencyBits.Load()),
			}}})
		case <-ctx.Done():
			return
		case <-w.done:
			return
		}
	}
}

// SubmitDetection lets an external application inject a detection
// payload out of band from the streaming RPC. The payload is
// validated with the same parser the stream client uses; it is not
// otherwise persisted, since no component here owns a queue for it.
func (s *ComputeServer) SubmitDetection(ctx context.Context, req *visionstream.SubmitDetectionRequest) (*visionstream.SubmitDetectionResponse, error) {
	raw := strings.TrimSpace(req.GetJson())
	if raw == "" {
		return &visionstream.SubmitDetectionResponse{Success: false, Message: "empty json payload"}, nil
	}
	if _, err := detectjson.Parse([]byte(raw)); err != nil {
		wrapped := fmt.Errorf("%w: %v", kernel.ErrParseFailed, err)
		return &visionstream.SubmitDetectionResponse{Success: false, Message: wrapped.Error()}, nil
	}
	log.Printf("[server] submitted detection accepted (%d bytes)", len(raw))
	return &visionstream.SubmitDetectionResponse{Success: true, Message: "accepted"}, nil
}

// WakeUp acknowledges a remote wake-up request. The provisioning
// script it would trigger on real hardware is out of scope here; this
// handler only logs the request and acks it.
func (s *ComputeServer) WakeUp(ctx context.Context, req *visionstream.WakeUpRequest) (*visionstream.WakeUpResponse, error) {
	log.Printf("[server] wake-up request received")
	return &visionstream.WakeUpResponse{}, nil
}

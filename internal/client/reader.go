package client

import (
	"fmt"
	"log"
	"reflect"
	"time"

	"gocv.io/x/gocv"

	"github.com/nikhs247/edgevision/internal/detectjson"
	"github.com/nikhs247/edgevision/internal/kernel"
	"github.com/nikhs247/edgevision/proto/visionstream"
)

// jsonFieldCandidates are the field names probed on a DetectionResult
// message to extract its payload string. A fixed "Json" field is the
// common case; the rest exist so a compatible but differently-named
// producer revision still works without a client rebuild.
var jsonFieldCandidates = []string{"Json", "DetectionResult", "Data", "Payload", "Text"}

// run is the reader task: it reads server messages until the stream
// ends, cancellation fires, or a terminate_ack is observed.
func (c *StreamClient) run() {
	defer close(c.readerDone)

	for {
		msg, err := c.stream.Recv()
		if err != nil {
			log.Printf("[client] stream closed: %v", fmt.Errorf("%w: %v", ErrReadClosed, err))
			return
		}

		switch payload := msg.Payload.(type) {
		case *visionstream.ServerMessage_DetectionResult:
			c.receivedResults.Add(1)
			c.rate.Incr(1)
			c.handleDetectionResult(payload.DetectionResult)

		case *visionstream.ServerMessage_Frame:
			c.handleRemoteFrame(payload.Frame)

		case *visionstream.ServerMessage_DeviceStatus:
			log.Printf("[client] device status: %s state=%v rate=%.1f", payload.DeviceStatus.DeviceId, payload.DeviceStatus.State, payload.DeviceStatus.FrameRate)

		case *visionstream.ServerMessage_ConfigResponse:
			if payload.ConfigResponse.Message == visionstream.TerminateAck {
				c.raiseTerminate()
				return
			}
		}
	}
}

func (c *StreamClient) handleDetectionResult(dr *visionstream.DetectionResult) {
	raw := extractJSONField(dr)
	if raw == "" {
		return
	}

	boxes, err := detectjson.Parse([]byte(raw))
	if err != nil {
		log.Printf("[client] %v", fmt.Errorf("%w: %v", kernel.ErrParseFailed, err))
		return
	}
	if len(boxes) == 0 {
		return
	}

	c.detections.push(Detection{
		Boxes:        boxes,
		CapturedAtMs: time.Now().UnixMilli(),
	})
}

func (c *StreamClient) handleRemoteFrame(f *visionstream.Frame) {
	mat, err := gocv.IMDecode(f.ImageData, gocv.IMReadColor)
	if err != nil {
		log.Printf("[client] %v", fmt.Errorf("%w: %v", kernel.ErrDecodeFailed, err))
		return
	}
	if mat.Empty() {
		mat.Close()
		return
	}
	c.frames.push(mat)
}

// extractJSONField probes dr for the first non-empty string field
// among jsonFieldCandidates, falling back to the canonical getter.
func extractJSONField(dr *visionstream.DetectionResult) string {
	v := reflect.ValueOf(dr).Elem()
	for _, name := range jsonFieldCandidates {
		field := v.FieldByName(name)
		if field.IsValid() && field.Kind() == reflect.String && field.String() != "" {
			return field.String()
		}
	}
	return dr.GetJson()
}

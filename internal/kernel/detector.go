package kernel

import (
	"fmt"
	"time"

	"gocv.io/x/gocv"

	"github.com/nikhs247/edgevision/internal/accel"
	"github.com/nikhs247/edgevision/internal/hailo"
)

const inferDeadline = 1000 * time.Millisecond

// Detector runs the detection graph and decodes its NMS output.
type Detector struct {
	session    *accel.Session
	threshold  *Threshold
	classNames []string
}

// NewDetector builds a detector bound to session, filtering by
// threshold and naming classes from classNames (class id n maps to
// classNames[n-1]; class zero is background and never emitted).
func NewDetector(session *accel.Session, threshold *Threshold, classNames []string) *Detector {
	return &Detector{session: session, threshold: threshold, classNames: classNames}
}

// Infer resizes frame to the model's input shape, runs the detection
// graph and returns the filtered detection list as JSON plus,
// optionally, the resized frame annotated with boxes and labels.
func (d *Detector) Infer(frame gocv.Mat, wantAnnotatedImage bool) (detectionJSON []byte, annotated *gocv.Mat, err error) {
	shape := d.session.Network.InputShape()

	resized := gocv.NewMat()
	gocv.Resize(frame, &resized, toSize(shape), 0, 0, gocv.InterpolationLinear)

	rgb := gocv.NewMat()
	gocv.CvtColor(resized, &rgb, gocv.ColorBGRToRGB)

	input := matToContiguousBytes(rgb, shape.FrameSize())

	outputs, runErr := d.session.Run(input, inferDeadline)
	rgb.Close()
	if runErr != nil {
		resized.Close()
		if hailo.IsTimeout(runErr) {
			return nil, nil, fmt.Errorf("%w: %v", ErrInferenceTimeout, runErr)
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInferenceError, runErr)
	}
	if len(outputs) == 0 {
		resized.Close()
		return nil, nil, fmt.Errorf("%w: no output buffers", ErrInferenceError)
	}

	all, decodeErr := decodeNMS(outputs[0], len(d.classNames))
	if decodeErr != nil {
		resized.Close()
		return nil, nil, fmt.Errorf("%w: %v", ErrInferenceError, decodeErr)
	}

	filtered := d.filterByThreshold(all)

	if wantAnnotatedImage {
		annotate(&resized, filtered, d.classNames)
		return nil, &resized, nil
	}

	resized.Close()
	payload, err := encodeDetections(filtered, d.classNames)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInferenceError, err)
	}
	return payload, nil, nil
}

func (d *Detector) filterByThreshold(dets []Detection) []Detection {
	threshold := float32(d.threshold.Load())
	out := make([]Detection, 0, len(dets))
	for _, det := range dets {
		if det.Score >= threshold {
			out = append(out, det)
		}
	}
	return out
}

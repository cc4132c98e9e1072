package kernel

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
	"gocv.io/x/gocv"

	"github.com/nikhs247/edgevision/internal/accel"
	"github.com/nikhs247/edgevision/internal/hailo"
)

// Enhancer runs the low-light enhancement graph, which may use a
// different input shape than the detection graph.
type Enhancer struct {
	session *accel.Session
}

// NewEnhancer builds an enhancer bound to session.
func NewEnhancer(session *accel.Session) *Enhancer {
	return &Enhancer{session: session}
}

// Enhance reconstructs frame at its original dimensions after running
// it through the low-light graph.
func (e *Enhancer) Enhance(frame gocv.Mat) (enhanced gocv.Mat, err error) {
	originalW, originalH := frame.Cols(), frame.Rows()
	shape := e.session.Network.InputShape()

	resizedIn := gocv.NewMat()
	defer resizedIn.Close()
	gocv.Resize(frame, &resizedIn, toSize(shape), 0, 0, gocv.InterpolationLinear)

	rgbIn := gocv.NewMat()
	gocv.CvtColor(resizedIn, &rgbIn, gocv.ColorBGRToRGB)
	input := matToContiguousBytes(rgbIn, shape.FrameSize())
	rgbIn.Close()

	outputs, runErr := e.session.Run(input, inferDeadline)
	if runErr != nil {
		if hailo.IsTimeout(runErr) {
			return gocv.Mat{}, fmt.Errorf("%w: %v", ErrInferenceTimeout, runErr)
		}
		return gocv.Mat{}, fmt.Errorf("%w: %v", ErrInferenceError, runErr)
	}

	rgbFrameSize := shape.Height * shape.Width * 3

	var rgbBuf []byte
	found := false
	for _, buf := range outputs {
		switch len(buf) {
		case rgbFrameSize:
			rgbBuf = buf
			found = true
		case rgbFrameSize * 4:
			rgbBuf = decodeFloat32RGBScaled(buf)
			found = true
		default:
			continue
		}
		if found {
			break
		}
	}
	if !found {
		return gocv.Mat{}, ErrOutputShape
	}

	rgbImage := rgbBytesToImage(rgbBuf, shape.Width, shape.Height)
	resizedImage := resize.Resize(uint(originalW), uint(originalH), rgbImage, resize.Lanczos3)

	bgrBuf := imageToBGRBytes(resizedImage, originalW, originalH)
	result, err := gocv.NewMatFromBytes(originalH, originalW, gocv.MatTypeCV8UC3, bgrBuf)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("%w: %v", ErrOutputShape, err)
	}
	return result, nil
}

// decodeFloat32RGBScaled decodes a float32 RGB buffer and scales it by
// 255 with clamping, producing 8-bit RGB bytes of the same pixel count.
func decodeFloat32RGBScaled(buf []byte) []byte {
	n := len(buf) / 4
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		v := readFloat32(buf[i*4:]) * 255
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		out[i] = byte(v)
	}
	return out
}

func rgbBytesToImage(buf []byte, w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := (y*w + x) * 3
			di := img.PixOffset(x, y)
			img.Pix[di] = buf[si]
			img.Pix[di+1] = buf[si+1]
			img.Pix[di+2] = buf[si+2]
			img.Pix[di+3] = 255
		}
	}
	return img
}

func imageToBGRBytes(img image.Image, w, h int) []byte {
	out := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			di := (y*w + x) * 3
			out[di] = byte(b >> 8)
			out[di+1] = byte(g >> 8)
			out[di+2] = byte(r >> 8)
		}
	}
	return out
}

package kernel

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/nikhs247/edgevision/internal/hailo"
)

func toSize(shape hailo.Shape) image.Point {
	return image.Pt(shape.Width, shape.Height)
}

// matToContiguousBytes copies mat's pixels into a byte buffer of
// exactly frameSize bytes. mat must already be in the model's
// expected channel order and dimensions.
func matToContiguousBytes(mat gocv.Mat, frameSize int) []byte {
	buf := mat.ToBytes()
	if len(buf) >= frameSize {
		return buf[:frameSize]
	}
	out := make([]byte, frameSize)
	copy(out, buf)
	return out
}

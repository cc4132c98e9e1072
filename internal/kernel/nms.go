package kernel

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Detection is one decoded NMS record, class id already offset by one
// (class zero is reserved for background).
type Detection struct {
	ClassID int
	XMin    float32
	YMin    float32
	XMax    float32
	YMax    float32
	Score   float32
}

// decodeNMS parses buf as a sequence of classCount per-class groups,
// each a float32-encoded record count followed by that many
// (x_min, y_min, x_max, y_max, score) float32 quintuples in normalized
// coordinates. classCount must come from configuration or graph
// metadata, never a literal.
func decodeNMS(buf []byte, classCount int) ([]Detection, error) {
	const recordFloats = 5
	const floatBytes = 4

	var out []Detection
	offset := 0

	for c := 0; c < classCount; c++ {
		if offset+floatBytes > len(buf) {
			return nil, fmt.Errorf("kernel: NMS buffer truncated reading count for class %d", c)
		}
		n := int(readFloat32(buf[offset:]))
		offset += floatBytes

		for i := 0; i < n; i++ {
			end := offset + recordFloats*floatBytes
			if end > len(buf) {
				return nil, fmt.Errorf("kernel: NMS buffer truncated reading record %d of class %d", i, c)
			}
			out = append(out, Detection{
				ClassID: c + 1,
				XMin:    readFloat32(buf[offset:]),
				YMin:    readFloat32(buf[offset+floatBytes:]),
				XMax:    readFloat32(buf[offset+2*floatBytes:]),
				YMax:    readFloat32(buf[offset+3*floatBytes:]),
				Score:   readFloat32(buf[offset+4*floatBytes:]),
			})
			offset = end
		}
	}

	return out, nil
}

func readFloat32(b []byte) float32 {
	bits := binary.LittleEndian.Uint32(b)
	return math.Float32frombits(bits)
}

func writeFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

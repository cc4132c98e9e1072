package kernel

import "testing"

func buildNMSBuffer(groups [][]Detection) []byte {
	var buf []byte
	appendFloat32 := func(v float32) {
		b := make([]byte, 4)
		writeFloat32(b, v)
		buf = append(buf, b...)
	}
	for _, group := range groups {
		appendFloat32(float32(len(group)))
		for _, d := range group {
			appendFloat32(d.XMin)
			appendFloat32(d.YMin)
			appendFloat32(d.XMax)
			appendFloat32(d.YMax)
			appendFloat32(d.Score)
		}
	}
	return buf
}

func TestDecodeNMS(t *testing.T) {
	groups := [][]Detection{
		{},
		{{XMin: 0.1, YMin: 0.2, XMax: 0.3, YMax: 0.4, Score: 0.9}},
		{},
		{{XMin: 0.5, YMin: 0.5, XMax: 0.6, YMax: 0.6, Score: 0.5}},
	}
	buf := buildNMSBuffer(groups)

	got, err := decodeNMS(buf, len(groups))
	if err != nil {
		t.Fatalf("decodeNMS: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 detections, got %d", len(got))
	}
	if got[0].ClassID != 2 {
		t.Fatalf("expected class id offset by one (background=0), got %d", got[0].ClassID)
	}
	if got[1].ClassID != 4 {
		t.Fatalf("expected class id 4, got %d", got[1].ClassID)
	}
}

func TestDecodeNMSTruncated(t *testing.T) {
	buf := []byte{0, 0, 0}
	if _, err := decodeNMS(buf, 1); err == nil {
		t.Fatalf("expected error on truncated buffer")
	}
}

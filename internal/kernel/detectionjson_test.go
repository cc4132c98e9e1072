package kernel

import (
	"encoding/json"
	"testing"
)

func TestEncodeDetectionsShape(t *testing.T) {
	dets := []Detection{
		{ClassID: 1, XMin: 0.1, YMin: 0.2, XMax: 0.3, YMax: 0.4, Score: 0.75},
	}
	classNames := []string{"person", "car"}

	raw, err := encodeDetections(dets, classNames)
	if err != nil {
		t.Fatalf("encodeDetections: %v", err)
	}

	var decoded wirePayload
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.Count != 1 || len(decoded.Detections) != 1 {
		t.Fatalf("unexpected count: %+v", decoded)
	}
	got := decoded.Detections[0]
	if got.Class != "person" || got.ClassID != 1 {
		t.Fatalf("unexpected class fields: %+v", got)
	}
	if got.BBox.XMin != 0.1 || got.BBox.YMax != 0.4 {
		t.Fatalf("unexpected bbox: %+v", got.BBox)
	}
}

func TestEncodeDetectionsEmptyList(t *testing.T) {
	raw, err := encodeDetections(nil, []string{"person"})
	if err != nil {
		t.Fatalf("encodeDetections: %v", err)
	}
	var decoded wirePayload
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Count != 0 || len(decoded.Detections) != 0 {
		t.Fatalf("expected empty payload, got %+v", decoded)
	}
}

func TestClassNameForOutOfRange(t *testing.T) {
	if got := classNameFor([]string{"person"}, 5); got != "unknown" {
		t.Fatalf("expected unknown, got %q", got)
	}
}

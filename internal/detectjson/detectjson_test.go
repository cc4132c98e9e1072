package detectjson

import "testing"

func TestParseExplicitBBox(t *testing.T) {
	raw := []byte(`{"detections":[{"class":"car","score":0.9,"bbox":{"x_min":0.1,"y_min":0.2,"x_max":0.4,"y_max":0.6}}],"count":1}`)
	boxes, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(boxes))
	}
	b := boxes[0]
	// W and H are x_max-x_min and y_max-y_min in float64, which is not
	// bit-exactly 0.3 and 0.4 for these inputs.
	xMin, yMin, xMax, yMax := 0.1, 0.2, 0.4, 0.6
	if b.X != xMin || b.Y != yMin || b.W != xMax-xMin || b.H != yMax-yMin {
		t.Fatalf("unexpected box: %+v", b)
	}
	if b.Score != 0.9 || b.Label != "car" {
		t.Fatalf("unexpected score/label: %+v", b)
	}
}

func TestParseArrayBBoxWithScore(t *testing.T) {
	raw := []byte(`{"detections":[{"bbox":[0.1,0.2,0.3,0.4],"score":0.9,"class":"car"}]}`)
	boxes, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(boxes))
	}
	b := boxes[0]
	if b.X != 0.1 || b.Y != 0.2 || b.W != 0.3 || b.H != 0.4 || b.Score != 0.9 || b.Label != "car" {
		t.Fatalf("unexpected box: %+v", b)
	}
}

func TestParseLastResortNumericTuple(t *testing.T) {
	raw := []byte(`{"weird":{"nested":[0.1,0.2,0.3,0.4,0.5]}}`)
	boxes, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(boxes))
	}
	b := boxes[0]
	if b.X != 0.1 || b.Y != 0.2 || b.W != 0.3 || b.H != 0.4 || b.Score != 0.5 {
		t.Fatalf("unexpected box: %+v", b)
	}
}

func TestParseRejectsNonPositiveDimensions(t *testing.T) {
	raw := []byte(`{"detections":[{"bbox":[0.1,0.2,0,0.4]}]}`)
	boxes, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(boxes) != 0 {
		t.Fatalf("expected zero boxes for non-positive width, got %d", len(boxes))
	}
}

func TestParseEmptyDetections(t *testing.T) {
	raw := []byte(`{"detections":[],"count":0}`)
	boxes, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(boxes) != 0 {
		t.Fatalf("expected zero boxes, got %d", len(boxes))
	}
}

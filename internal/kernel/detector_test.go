package kernel

import "testing"

func TestFilterByThresholdKeepsScoresAtOrAboveCutoff(t *testing.T) {
	d := &Detector{threshold: NewThreshold(0.5)}
	dets := []Detection{
		{ClassID: 1, Score: 0.49},
		{ClassID: 2, Score: 0.5},
		{ClassID: 3, Score: 0.51},
	}

	got := d.filterByThreshold(dets)

	if len(got) != 2 {
		t.Fatalf("expected 2 detections at or above threshold, got %d: %+v", len(got), got)
	}
	if got[0].ClassID != 2 || got[1].ClassID != 3 {
		t.Fatalf("unexpected survivors: %+v", got)
	}
}

func TestFilterByThresholdPreservesClassIDOffset(t *testing.T) {
	d := &Detector{threshold: NewThreshold(0)}
	dets := []Detection{{ClassID: 1, Score: 0}, {ClassID: 4, Score: 0}}

	got := d.filterByThreshold(dets)

	if len(got) != 2 {
		t.Fatalf("expected both detections to survive a zero threshold, got %d", len(got))
	}
	if got[0].ClassID != 1 || got[1].ClassID != 4 {
		t.Fatalf("expected class ids to pass through unchanged, got %d and %d", got[0].ClassID, got[1].ClassID)
	}
}

func TestFilterByThresholdEmptyInput(t *testing.T) {
	d := &Detector{threshold: NewThreshold(0.5)}
	got := d.filterByThreshold(nil)
	if len(got) != 0 {
		t.Fatalf("expected no detections from empty input, got %d", len(got))
	}
}

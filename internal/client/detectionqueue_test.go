package client

import "testing"

func TestDetectionQueuePopAllSwapsOut(t *testing.T) {
	q := newDetectionQueue()
	q.push(Detection{CapturedAtMs: 1})
	q.push(Detection{CapturedAtMs: 2})

	got := q.popAll()
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if len(q.popAll()) != 0 {
		t.Fatalf("expected the queue to be empty after popAll")
	}
}

func TestDetectionQueueBounded(t *testing.T) {
	q := newDetectionQueue()
	for i := 0; i < detectionQueueCapacity+10; i++ {
		q.push(Detection{CapturedAtMs: int64(i)})
	}
	got := q.popAll()
	if len(got) != detectionQueueCapacity {
		t.Fatalf("expected %d records, got %d", detectionQueueCapacity, len(got))
	}
	if got[0].CapturedAtMs != 10 {
		t.Fatalf("expected oldest-dropped semantics, got first=%d", got[0].CapturedAtMs)
	}
}

package client

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestFrameQueueBoundedDropOldest(t *testing.T) {
	q := newFrameQueue()
	for i := 0; i < 6; i++ {
		q.push(gocv.NewMat())
	}
	if q.len() != remoteFrameQueueCapacity {
		t.Fatalf("expected queue length %d, got %d", remoteFrameQueueCapacity, q.len())
	}
}

func TestFrameQueuePopOrder(t *testing.T) {
	q := newFrameQueue()
	first := gocv.NewMat()
	second := gocv.NewMat()
	q.push(first)
	q.push(second)

	got, ok := q.pop()
	if !ok {
		t.Fatalf("expected a frame")
	}
	if got != first {
		t.Fatalf("expected FIFO order")
	}
}

func TestFrameQueuePopEmpty(t *testing.T) {
	q := newFrameQueue()
	if _, ok := q.pop(); ok {
		t.Fatalf("expected no frame from an empty queue")
	}
}

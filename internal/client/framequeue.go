package client

import (
	"sync"

	"gocv.io/x/gocv"
)

const remoteFrameQueueCapacity = 4

// frameQueue is a bounded, drop-oldest ring buffer for decoded remote
// frames. Generalized from a capacity-1 latest-frame holder to a
// capacity-4 FIFO: pop_remote_frame drains in arrival order, but the
// oldest entry is evicted once the buffer is full.
type frameQueue struct {
	mu    sync.Mutex
	items []gocv.Mat
}

func newFrameQueue() *frameQueue {
	return &frameQueue{items: make([]gocv.Mat, 0, remoteFrameQueueCapacity)}
}

// push enqueues frame, evicting and closing the oldest entry if the
// queue is already at capacity.
func (q *frameQueue) push(frame gocv.Mat) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) >= remoteFrameQueueCapacity {
		q.items[0].Close()
		q.items = q.items[1:]
	}
	q.items = append(q.items, frame)
}

// pop returns the oldest buffered frame, if any.
func (q *frameQueue) pop() (gocv.Mat, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return gocv.Mat{}, false
	}
	frame := q.items[0]
	q.items = q.items[1:]
	return frame, true
}

// len reports the current buffered frame count, for tests asserting
// the bound is respected.
func (q *frameQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

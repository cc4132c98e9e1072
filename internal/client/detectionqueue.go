package client

import (
	"sync"

	"github.com/nikhs247/edgevision/internal/detectjson"
)

const detectionQueueCapacity = 64

// Detection is one parsed detection record: the boxes plus the
// capture timestamp in milliseconds.
type Detection struct {
	Boxes        []detectjson.Box
	CapturedAtMs int64
}

// detectionQueue accumulates detection records between UI drains.
// Bounded at detectionQueueCapacity with drop-oldest overflow, per the
// source's recommendation to bound what was an unbounded queue there.
type detectionQueue struct {
	mu    sync.Mutex
	items []Detection
}

func newDetectionQueue() *detectionQueue {
	return &detectionQueue{}
}

func (q *detectionQueue) push(d Detection) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, d)
	if len(q.items) > detectionQueueCapacity {
		q.items = q.items[len(q.items)-detectionQueueCapacity:]
	}
}

// popAll atomically swaps out and returns every accumulated record.
func (q *detectionQueue) popAll() []Detection {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.items
	q.items = nil
	return out
}

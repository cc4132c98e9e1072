package accel

import (
	"testing"

	"github.com/nikhs247/edgevision/internal/hailo"
)

type fakeGraph struct {
	shape    hailo.Shape
	loadHits int
}

func (f *fakeGraph) Configure(batchSize int) (network, error) {
	return &FakeNetwork{Shape: f.shape, OutputBufs: [][]byte{make([]byte, 16)}}, nil
}

type fakeDevice struct {
	loads  map[string]int
	closed bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{loads: make(map[string]int)}
}

func (f *fakeDevice) LoadGraph(path string) (graph, error) {
	f.loads[path]++
	return &fakeGraph{shape: hailo.Shape{Height: 300, Width: 300, Channels: 3}}, nil
}

func (f *fakeDevice) Close() { f.closed = true }

func TestManagerCacheHit(t *testing.T) {
	dev := newFakeDevice()
	m := newManagerWithDevice(dev)

	if err := m.Init("graph.hef"); err != nil {
		t.Fatalf("Init: %v", err)
	}

	first, err := m.GetOrCreate("graph.hef")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	second, err := m.GetOrCreate("graph.hef")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	if first != second {
		t.Fatalf("expected the same cached session pair on second call")
	}
	if dev.loads["graph.hef"] != 1 {
		t.Fatalf("expected exactly one graph load, got %d", dev.loads["graph.hef"])
	}
}

func TestManagerGetOrCreateBeforeInit(t *testing.T) {
	m := newManager(nil)
	if _, err := m.GetOrCreate("graph.hef"); err != ErrNotInitialized {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestManagerDefaultShape(t *testing.T) {
	dev := newFakeDevice()
	m := newManagerWithDevice(dev)
	if err := m.Init("graph.hef"); err != nil {
		t.Fatalf("Init: %v", err)
	}

	shape := m.GetDefaultShape()
	if shape.Height != 300 || shape.Width != 300 || shape.Channels != 3 {
		t.Fatalf("unexpected default shape: %+v", shape)
	}
	if m.GetDefaultFrameSize() != 300*300*3 {
		t.Fatalf("unexpected default frame size: %d", m.GetDefaultFrameSize())
	}
}

func TestManagerCleanupClosesDevice(t *testing.T) {
	dev := newFakeDevice()
	m := newManagerWithDevice(dev)
	if err := m.Init("graph.hef"); err != nil {
		t.Fatalf("Init: %v", err)
	}

	m.Cleanup()
	if !dev.closed {
		t.Fatalf("expected Cleanup to close the device")
	}

	if _, err := m.GetOrCreate("graph.hef"); err != ErrShutdownInProgress {
		t.Fatalf("expected ErrShutdownInProgress after cleanup, got %v", err)
	}
	if err := m.Init("graph.hef"); err != ErrShutdownInProgress {
		t.Fatalf("expected ErrShutdownInProgress on Init after cleanup, got %v", err)
	}
}

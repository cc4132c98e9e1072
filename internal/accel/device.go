package accel

import (
	"time"

	"github.com/nikhs247/edgevision/internal/hailo"
)

// device, graph and network are the slice of the hailo package that
// Manager depends on. Defined as interfaces so tests can substitute a
// fake accelerator instead of the real cgo-backed one.
type device interface {
	LoadGraph(path string) (graph, error)
	Close()
}

type graph interface {
	Configure(batchSize int) (network, error)
}

type network interface {
	InputShape() hailo.Shape
	OutputCount() int
	OutputFrameSize(i int) int
	CreateBindings() (bindings, error)
	Run(b bindings, deadline time.Duration) error
}

type bindings interface {
	BindInput(buf []byte) error
	Outputs() [][]byte
}

// hailoDevice adapts *hailo.Device to the device interface above.
type hailoDevice struct {
	d *hailo.Device
}

func (h hailoDevice) LoadGraph(path string) (graph, error) {
	g, err := h.d.LoadGraph(path)
	if err != nil {
		return nil, err
	}
	return hailoGraph{g, h.d}, nil
}

func (h hailoDevice) Close() { h.d.Close() }

type hailoGraph struct {
	g *hailo.Graph
	d *hailo.Device
}

func (h hailoGraph) Configure(batchSize int) (network, error) {
	n, err := h.d.Configure(h.g, batchSize)
	if err != nil {
		return nil, err
	}
	return hailoNetwork{n}, nil
}

type hailoNetwork struct {
	n *hailo.ConfiguredGraph
}

func (h hailoNetwork) InputShape() hailo.Shape   { return h.n.InputShape() }
func (h hailoNetwork) OutputCount() int          { return h.n.OutputCount() }
func (h hailoNetwork) OutputFrameSize(i int) int { return h.n.OutputFrameSize(i) }

func (h hailoNetwork) CreateBindings() (bindings, error) {
	b, err := h.n.CreateBindings()
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (h hailoNetwork) Run(b bindings, deadline time.Duration) error {
	return h.n.Run(b.(*hailo.Bindings), deadline)
}

// OpenDevice opens the real accelerator, wrapped for Manager's use.
func OpenDevice() (device, error) {
	d, err := hailo.OpenDevice()
	if err != nil {
		return nil, err
	}
	return hailoDevice{d}, nil
}

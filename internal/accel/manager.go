// Package accel owns the accelerator session cache: one virtual device,
// lazily loaded graphs configured at batch size one and cached by file
// path for the lifetime of the process.
package accel

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/nikhs247/edgevision/internal/hailo"
)

// Session pairs a loaded graph with its configured, ready-to-run form.
type Session struct {
	Graph     graph
	Network   network
	Shape     hailo.Shape
	FrameSize int
}

// OutputCount returns the number of output tensors this session's
// graph produces.
func (s *Session) OutputCount() int {
	return s.Network.OutputCount()
}

// Run binds input, runs inference synchronously against deadline and
// returns the raw output buffers, one per output tensor, in graph
// output order. It is the only inference invocation callers need.
func (s *Session) Run(input []byte, deadline time.Duration) ([][]byte, error) {
	b, err := s.Network.CreateBindings()
	if err != nil {
		return nil, err
	}
	if err := b.BindInput(input); err != nil {
		return nil, err
	}
	if err := s.Network.Run(b, deadline); err != nil {
		return nil, err
	}
	return b.Outputs(), nil
}

// Manager is an explicit, process-scoped handle to the accelerator. It
// is constructed once in a cmd/ entry point and threaded through to
// every component that needs to run inference; it is never a package
// level singleton.
type Manager struct {
	mu sync.Mutex

	dev      device
	sessions map[string]*Session

	defaultPath  string
	defaultShape hailo.Shape
	defaultFrame int

	lowlightOnly bool
	shutdown     bool

	openDevice func() (device, error)
}

// NewManager constructs an uninitialized manager backed by the real
// accelerator. Call Init before any other method.
func NewManager() *Manager {
	return newManager(OpenDevice)
}

// newManagerWithDevice constructs a manager backed by an already
// opened device, for tests. The device is never re-opened.
func newManagerWithDevice(d device) *Manager {
	m := newManager(nil)
	m.dev = d
	return m
}

func newManager(open func() (device, error)) *Manager {
	return &Manager{
		sessions:     make(map[string]*Session),
		lowlightOnly: os.Getenv("LOWLIGHT_ENHANCE") == "1",
		openDevice:   open,
	}
}

// Init constructs the virtual device on first call, loads graphPath as
// the default graph, reads its input shape and caches it at batch size
// one. Idempotent: once a default graph has been loaded, subsequent
// calls are no-ops whatever graphPath they pass.
func (m *Manager) Init(graphPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shutdown {
		return ErrShutdownInProgress
	}

	if m.dev == nil {
		dev, err := m.openDevice()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDeviceInit, err)
		}
		m.dev = dev
	} else if m.defaultPath != "" {
		return nil
	}

	session, err := loadAndConfigure(m.dev, graphPath)
	if err != nil {
		return err
	}

	m.sessions[graphPath] = session
	m.defaultPath = graphPath
	m.defaultShape = session.Shape
	m.defaultFrame = session.FrameSize

	return nil
}

// GetOrCreate returns the cached session for graphPath, loading and
// caching one if this is the first request for that path. Requires
// Init to have succeeded.
func (m *Manager) GetOrCreate(graphPath string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shutdown {
		return nil, ErrShutdownInProgress
	}
	if m.dev == nil {
		return nil, ErrNotInitialized
	}
	if s, ok := m.sessions[graphPath]; ok {
		return s, nil
	}

	session, err := loadAndConfigure(m.dev, graphPath)
	if err != nil {
		return nil, err
	}
	m.sessions[graphPath] = session
	return session, nil
}

// GetDefaultShape returns the input tensor shape of the first-loaded graph.
func (m *Manager) GetDefaultShape() hailo.Shape {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.defaultShape
}

// GetDefaultFrameSize returns the input byte size of the first-loaded graph.
func (m *Manager) GetDefaultFrameSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.defaultFrame
}

// IsLowlightOnly reports whether this process should run the
// enhancement pipeline instead of detection, per LOWLIGHT_ENHANCE.
func (m *Manager) IsLowlightOnly() bool {
	return m.lowlightOnly
}

// DefaultSession returns the session for the graph passed to Init.
func (m *Manager) DefaultSession() (*Session, error) {
	m.mu.Lock()
	path := m.defaultPath
	m.mu.Unlock()
	if path == "" {
		return nil, ErrNotInitialized
	}
	return m.GetOrCreate(path)
}

// Cleanup drops all cached sessions and releases the virtual device.
// Safe to call once; subsequent calls are no-ops.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shutdown {
		return
	}
	m.shutdown = true

	m.sessions = make(map[string]*Session)
	if m.dev != nil {
		m.dev.Close()
		m.dev = nil
	}
}

func loadAndConfigure(dev device, graphPath string) (*Session, error) {
	g, err := dev.LoadGraph(graphPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGraphLoad, err)
	}

	net, err := g.Configure(1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigure, err)
	}

	shape := net.InputShape()
	return &Session{
		Graph:     g,
		Network:   net,
		Shape:     shape,
		FrameSize: shape.FrameSize(),
	}, nil
}

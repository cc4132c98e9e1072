package accel

import (
	"time"

	"github.com/nikhs247/edgevision/internal/hailo"
)

// FakeBindings and FakeNetwork let tests in other packages drive a
// Session without a real accelerator. network and bindings are
// unexported, so a type satisfying them has to be declared here, in
// the same package, and exported for outside use. manager_test.go's
// fake graph configures a FakeNetwork too, and internal/kernel's tests
// build sessions from it.
type FakeBindings struct {
	Input []byte
	Out   [][]byte
}

func (f *FakeBindings) BindInput(buf []byte) error { f.Input = buf; return nil }
func (f *FakeBindings) Outputs() [][]byte          { return f.Out }

// FakeNetwork is a network backed by caller-supplied output buffers
// instead of a real inference run. Set Shape and OutputBufs before use;
// RunErr, if non-nil, is returned from Run instead of running at all.
type FakeNetwork struct {
	Shape      hailo.Shape
	OutputBufs [][]byte
	RunErr     error
}

func (f *FakeNetwork) InputShape() hailo.Shape   { return f.Shape }
func (f *FakeNetwork) OutputCount() int          { return len(f.OutputBufs) }
func (f *FakeNetwork) OutputFrameSize(i int) int { return len(f.OutputBufs[i]) }

func (f *FakeNetwork) CreateBindings() (bindings, error) {
	return &FakeBindings{Out: f.OutputBufs}, nil
}

func (f *FakeNetwork) Run(b bindings, deadline time.Duration) error {
	return f.RunErr
}

// NewFakeSession builds a Session around net, for kernel-level tests
// that need a *Session without going through Manager/OpenDevice.
func NewFakeSession(net *FakeNetwork) *Session {
	return &Session{
		Network:   net,
		Shape:     net.Shape,
		FrameSize: net.Shape.FrameSize(),
	}
}

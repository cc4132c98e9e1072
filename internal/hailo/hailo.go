// Package hailo provides a thin cgo wrapper around the HailoRT device SDK.
//
// It exposes only the primitive operations the session manager and the
// detection/enhancement kernels need: device creation, graph load,
// session configuration, buffer binding and synchronous run. Everything
// above that line (NMS decoding, image preprocessing, output buffer
// interpretation) lives in internal/accel and internal/kernel.
package hailo

/*
#cgo CFLAGS: -I${SRCDIR}/../../third_party/hailort/include
#cgo LDFLAGS: -L${SRCDIR}/../../third_party/hailort/lib -lhailort -lstdc++

#include "hailo_c_api.h"
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"time"
	"unsafe"
)

// Shape describes an inference tensor's dimensions.
type Shape struct {
	Height   int
	Width    int
	Channels int
}

// FrameSize returns the byte size of a buffer matching this shape at
// one byte per channel.
func (s Shape) FrameSize() int {
	return s.Height * s.Width * s.Channels
}

// Device is a handle to the physical accelerator. There is exactly one
// per process; internal/accel.Manager owns it.
type Device struct {
	handle *C.hailo_device_t
}

// OpenDevice scans for and opens the first available accelerator.
func OpenDevice() (*Device, error) {
	handle := C.hailo_device_create()
	if handle == nil {
		return nil, errors.New("hailo: " + lastError())
	}
	return &Device{handle: handle}, nil
}

// Close releases the device. Safe to call once; callers must not use
// the device afterward.
func (d *Device) Close() {
	if d.handle != nil {
		C.hailo_device_release(d.handle)
		d.handle = nil
	}
}

// Graph is a loaded, unconfigured inference graph (HEF).
type Graph struct {
	handle *C.hailo_hef_t
}

// LoadGraph parses a compiled HEF file from disk.
func (d *Device) LoadGraph(path string) (*Graph, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	handle := C.hailo_hef_load(cPath)
	if handle == nil {
		return nil, errors.New("hailo: " + lastError())
	}
	return &Graph{handle: handle}, nil
}

// ConfiguredGraph is a graph reserved for execution at a fixed batch size.
type ConfiguredGraph struct {
	handle *C.hailo_configured_network_t
	shape  Shape
}

// Configure reserves resources on the device for this graph at the
// given batch size and reads its input tensor shape.
func (d *Device) Configure(g *Graph, batchSize int) (*ConfiguredGraph, error) {
	handle := C.hailo_configure_network(d.handle, g.handle, C.int(batchSize))
	if handle == nil {
		return nil, errors.New("hailo: " + lastError())
	}

	info := C.hailo_get_input_shape(handle)
	shape := Shape{
		Height:   int(info.height),
		Width:    int(info.width),
		Channels: int(info.channels),
	}

	return &ConfiguredGraph{handle: handle, shape: shape}, nil
}

// InputShape returns the tensor dimensions this session was configured with.
func (c *ConfiguredGraph) InputShape() Shape {
	return c.shape
}

// OutputCount returns the number of output tensors the network produces.
func (c *ConfiguredGraph) OutputCount() int {
	return int(C.hailo_get_output_count(c.handle))
}

// OutputFrameSize returns the byte size the device reports for output
// buffer index i.
func (c *ConfiguredGraph) OutputFrameSize(i int) int {
	return int(C.hailo_get_output_frame_size(c.handle, C.int(i)))
}

// Bindings attaches one input buffer and a set of output buffers to a
// single inference invocation.
type Bindings struct {
	handle  *C.hailo_bindings_t
	outputs [][]byte
}

// CreateBindings allocates a bindings descriptor sized for this
// session's single input and all of its outputs.
func (c *ConfiguredGraph) CreateBindings() (*Bindings, error) {
	handle := C.hailo_bindings_create(c.handle)
	if handle == nil {
		return nil, errors.New("hailo: " + lastError())
	}

	n := c.OutputCount()
	outputs := make([][]byte, n)
	for i := 0; i < n; i++ {
		outputs[i] = make([]byte, c.OutputFrameSize(i))
	}

	return &Bindings{handle: handle, outputs: outputs}, nil
}

// BindInput attaches the single input buffer. buf must remain valid
// until after Run returns.
func (b *Bindings) BindInput(buf []byte) error {
	if len(buf) == 0 {
		return errors.New("hailo: empty input buffer")
	}
	rc := C.hailo_bindings_set_input(b.handle, (*C.uint8_t)(unsafe.Pointer(&buf[0])), C.size_t(len(buf)))
	if rc != 0 {
		return errors.New("hailo: " + lastError())
	}
	return nil
}

// Outputs returns the output buffers bound by CreateBindings, valid to
// read after a successful Run.
func (b *Bindings) Outputs() [][]byte {
	return b.outputs
}

var errTimeout = errors.New("hailo: inference timeout")

// Run executes the bound inference synchronously against the given
// deadline. It returns errTimeout if the device does not complete
// within the deadline.
func (c *ConfiguredGraph) Run(b *Bindings, deadline time.Duration) error {
	for i := range b.outputs {
		buf := b.outputs[i]
		C.hailo_bindings_set_output(b.handle, C.int(i), (*C.uint8_t)(unsafe.Pointer(&buf[0])), C.size_t(len(buf)))
	}

	rc := C.hailo_run(c.handle, b.handle, C.uint32_t(deadline.Milliseconds()))
	switch rc {
	case 0:
		return nil
	case C.HAILO_TIMEOUT:
		return errTimeout
	default:
		return errors.New("hailo: " + lastError())
	}
}

// IsTimeout reports whether err is the timeout sentinel returned by Run.
func IsTimeout(err error) bool {
	return errors.Is(err, errTimeout)
}

func lastError() string {
	return C.GoString(C.hailo_get_last_error())
}

package kernel

import "errors"

var (
	ErrInferenceTimeout = errors.New("kernel: inference timed out")
	ErrInferenceError   = errors.New("kernel: inference failed")
	ErrOutputShape      = errors.New("kernel: no output buffer of sufficient size")
	ErrDecodeFailed     = errors.New("kernel: image decode failed")
	ErrParseFailed      = errors.New("kernel: detection payload parse failed")
)

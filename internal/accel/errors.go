package accel

import "errors"

// Sentinel errors for the accelerator session manager, matching the
// error kinds a caller needs to branch on.
var (
	ErrDeviceInit         = errors.New("accel: device initialization failed")
	ErrGraphLoad          = errors.New("accel: graph load failed")
	ErrConfigure          = errors.New("accel: session configuration failed")
	ErrNotInitialized     = errors.New("accel: manager not initialized")
	ErrShutdownInProgress = errors.New("accel: shutdown in progress")
)

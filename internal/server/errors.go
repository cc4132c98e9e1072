package server

import "errors"

// Sentinel errors for the compute-side stream handler. They mirror
// the client package's own ChannelUnready/WriteClosed/ReadClosed set,
// scoped to the server's direction of the same stream.
var (
	ErrWriteClosed = errors.New("server: write on closed stream")
	ErrReadClosed  = errors.New("server: read on closed stream")
)

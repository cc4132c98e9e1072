package client

import "errors"

var (
	ErrChannelUnready = errors.New("client: channel failed to become READY")
	ErrWriteClosed    = errors.New("client: write on closed stream")
	ErrReadClosed     = errors.New("client: read on closed stream")
)

// Package netutil provides network helpers shared by tabulad and tabulactl.
//
// This file classifies dial and listen errors by type instead of by message
// text, so callers can print useful hints for the two failures operators hit
// most: a port already taken by another process, and no daemon listening.
package netutil

import (
	"errors"
	"net"
	"syscall"
)

// IsAddressInUseError reports whether err is a listen failure caused by
// another process holding the address.
func IsAddressInUseError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.EADDRINUSE)
	}
	return false
}

// IsConnectionRefusedError reports whether err is a dial failure because
// nothing is listening at the target, e.g. tabulad is not running.
func IsConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return false
}

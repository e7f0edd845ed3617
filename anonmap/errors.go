//go:build linux

package anonmap

import (
	"errors"
	"fmt"
)

// ErrReleased indicates an operation on a Region whose mapping was already
// released.
var ErrReleased = errors.New("anonmap: region already released")

// MapError reports a failed mmap(2) call. No region exists when it is
// returned; there is nothing to release.
type MapError struct {
	// Err is the underlying platform error, typically a unix.Errno.
	Err error
}

func (e *MapError) Error() string {
	return fmt.Sprintf("anonmap: mmap failed: %v", e.Err)
}

func (e *MapError) Unwrap() error { return e.Err }

// ReleaseError reports a failed munmap(2) call. The mapping is still live
// and its handle is carried in Region, so the caller can retry Release or
// explicitly abandon the memory. Dropping a ReleaseError without acting on
// it leaks the mapping.
type ReleaseError struct {
	// Region is the still-live handle, unchanged by the failed attempt.
	Region *Region
	// Err is the underlying platform error, typically a unix.Errno.
	Err error
}

func (e *ReleaseError) Error() string {
	return fmt.Sprintf("anonmap: munmap of %d-byte region failed: %v", e.Region.Len(), e.Err)
}

func (e *ReleaseError) Unwrap() error { return e.Err }

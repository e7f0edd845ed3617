//go:build linux && !386 && !arm && !mips && !mipsle

package hugetlb

import (
	"errors"
	"fmt"
)

// ErrReleased indicates an operation on a Region whose mapping was already
// released.
var ErrReleased = errors.New("hugetlb: region already released")

// MapError reports a failed mmap(2) call. No region exists when it is
// returned. Typical causes are a size class that is not configured on the
// host kernel or too few reserved huge pages of that class.
type MapError struct {
	// Size is the class the caller asked for.
	Size Size
	// Err is the underlying platform error, typically a unix.Errno.
	Err error
}

func (e *MapError) Error() string {
	return fmt.Sprintf("hugetlb: mmap of %s huge-page region failed: %v", e.Size, e.Err)
}

func (e *MapError) Unwrap() error { return e.Err }

// ReleaseError reports a failed munmap(2) call. The mapping is still live
// and its handle is carried in Region so the caller can retry Release or
// explicitly abandon the memory. Dropping a ReleaseError without acting on
// it leaks the mapping.
type ReleaseError struct {
	// Region is the still-live handle, unchanged by the failed attempt.
	Region *Region
	// Err is the underlying platform error, typically a unix.Errno.
	Err error
}

func (e *ReleaseError) Error() string {
	return fmt.Sprintf("hugetlb: munmap of %s huge-page region failed: %v", e.Region.Size(), e.Err)
}

func (e *ReleaseError) Unwrap() error { return e.Err }

//go:build linux

package anonmap

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Region is one live anonymous mapping. The zero value is not usable; obtain
// a Region from New. All methods are on *Region and the struct must not be
// copied while the mapping is live.
type Region struct {
	// data spans the whole mapping. It is the capability to unmap: nil
	// after a successful Release, so a released handle cannot be reused.
	data []byte
}

// New maps an anonymous, shared, read-write region of exactly length bytes.
//
// The mapping is requested with MAP_POPULATE, so all pages are faulted in
// before New returns, and the memory is zero-filled. length is not rounded
// or validated beyond what the kernel enforces; alignment to the page size
// is a kernel-side effect. On failure New returns a *MapError wrapping the
// platform error and no region exists.
func New(length int) (*Region, error) {
	data, err := unix.Mmap(
		-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_SHARED|unix.MAP_ANONYMOUS|unix.MAP_POPULATE,
	)
	if err != nil {
		return nil, &MapError{Err: err}
	}
	return &Region{data: data}, nil
}

// Len returns the mapped length in bytes, or 0 after release.
func (r *Region) Len() int { return len(r.data) }

// Bytes returns the mapping as a read-write byte slice spanning the full
// length. This is the default, bounds-checked access path. Returns nil after
// release.
func (r *Region) Bytes() []byte { return r.data }

// Ptr returns the base address of the mapping, or nil after release.
func (r *Region) Ptr() unsafe.Pointer {
	if len(r.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&r.data[0])
}

// UncheckedPtr returns the base address advanced by offset bytes with no
// bounds check against Len.
//
// This is an escape hatch for callers (such as allocators layered on top of
// the region) that have already established the offset is in range. An
// offset outside [0, Len) yields a pointer outside the mapping;
// dereferencing it is the caller's bug. Prefer Bytes.
func (r *Region) UncheckedPtr(offset int) unsafe.Pointer {
	return unsafe.Add(r.Ptr(), offset)
}

// Advise applies madvise(2) advice (for example unix.MADV_RANDOM or
// unix.MADV_DONTNEED) to the whole region.
func (r *Region) Advise(advice int) error {
	if r.data == nil {
		return ErrReleased
	}
	return unix.Madvise(r.data, advice)
}

// Release unmaps the region. Release consumes the handle: on success the
// Region is dead and every later call on it fails with ErrReleased.
//
// munmap(2) can fail. On failure the mapping is untouched and Release
// returns a *ReleaseError carrying this same handle, so the caller keeps
// the ability to retry or to abandon the memory deliberately. Release never
// retries and never logs.
func (r *Region) Release() error {
	if r.data == nil {
		return ErrReleased
	}
	if err := unix.Munmap(r.data); err != nil {
		return &ReleaseError{Region: r, Err: err}
	}
	r.data = nil
	return nil
}

// Free is the best-effort teardown for the common case: it attempts the
// unmap and DISCARDS any munmap error, leaking the mapping if the kernel
// refused the call. Safe to call on an already-released region. Callers
// that need to observe unmap failure must use Release instead.
func (r *Region) Free() {
	if r.data == nil {
		return
	}
	_ = unix.Munmap(r.data)
	r.data = nil
}

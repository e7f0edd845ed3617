//go:build linux && !386 && !arm && !mips && !mipsle

package hugetlb

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Region is one live huge-page mapping. Its length is fixed by its size
// class. The zero value is not usable; obtain a Region from New. All methods
// are on *Region and the struct must not be copied while the mapping is
// live.
type Region struct {
	// data spans the whole mapping. It is the capability to unmap: nil
	// after a successful Release, so a released handle cannot be reused.
	data []byte
	size Size
}

// New maps a private, anonymous, read-write, huge-page-backed region whose
// length is exactly size.Bytes().
//
// The mapping is requested with MAP_POPULATE, so every huge page is
// reserved and faulted in before New returns and the memory is zero-filled.
// New does not check whether the class is configured on the running kernel;
// if it is not, or too few reserved pages are free, New returns a *MapError
// wrapping the kernel's error and no region exists.
func New(size Size) (*Region, error) {
	if !size.valid() {
		return nil, &MapError{Size: size, Err: unix.EINVAL}
	}
	data, err := unix.Mmap(
		-1, 0, size.Bytes(),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS|unix.MAP_HUGETLB|unix.MAP_POPULATE|size.flag(),
	)
	if err != nil {
		return nil, &MapError{Size: size, Err: err}
	}
	return &Region{data: data, size: size}, nil
}

// Size returns the region's size class.
func (r *Region) Size() Size { return r.size }

// Capacity returns the region's fixed length in bytes: the magnitude of its
// size class. It does not consult the kernel.
func (r *Region) Capacity() int { return r.size.Bytes() }

// Bytes returns the mapping as a read-write byte slice whose length is
// exactly Capacity. This is the default, bounds-checked access path.
// Returns nil after release.
func (r *Region) Bytes() []byte { return r.data }

// Ptr returns the base address of the mapping for callers needing
// pointer-level access, or nil after release.
func (r *Region) Ptr() unsafe.Pointer {
	if len(r.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&r.data[0])
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

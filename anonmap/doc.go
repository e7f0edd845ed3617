// Package anonmap provides anonymous, page-aligned, zero-filled memory
// regions mapped directly from the Linux kernel with mmap(2), bypassing the
// Go heap.
//
// # Overview
//
// A Region is a single anonymous, shared, read-write mapping of a
// caller-chosen byte length. The mapping is requested with MAP_POPULATE so
// the kernel faults all backing pages in eagerly, and it is zero-filled per
// anonymous-mapping semantics. Regions are useful as backing stores for
// external allocators and ring buffers that need large, page-aligned memory
// outside the garbage collector's view.
//
// # Lifecycle
//
// A Region is created by New and stays live until Release succeeds:
//
//	r, err := anonmap.New(1 << 20)
//	if err != nil {
//	    return err
//	}
//	defer r.Free()
//
// Release is the primary teardown path. munmap(2) can fail, and Release
// surfaces that failure instead of discarding it: on error the Region is
// still live and is handed back inside the *ReleaseError so the caller can
// retry or deliberately leak it. Free is a best-effort convenience that
// discards any munmap error; use Release when the outcome matters.
//
// A Region has exactly one owner. Copying the struct while the mapping is
// live would allow two independent Release calls against the same mapping,
// which the kernel does not defend against; always pass *Region.
//
// # Safety
//
// Bytes is the default, bounds-checked access path. Ptr and UncheckedPtr
// are escape hatches for callers that manage their own bounds; nothing stops
// an out-of-range UncheckedPtr offset from producing a pointer outside the
// mapping.
package anonmap

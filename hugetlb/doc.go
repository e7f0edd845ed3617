// Package hugetlb maps large, zero-filled memory regions backed by Linux
// huge pages (HugeTLB), via mmap(2) with MAP_HUGETLB.
//
// # Overview
//
// Huge pages cut translation-lookaside-buffer pressure for very large
// regions at the cost of coarse-grained sizing: a mapping must be exactly
// one of the kernel's huge-page size classes. Size enumerates the twelve
// classes this package knows (64KB through 16GB); each class pairs a byte
// magnitude with the flag encoding mmap needs, and a Region's length is
// always exactly its class's magnitude.
//
// Mappings are private, anonymous, read-write, and requested with
// MAP_POPULATE so the kernel reserves and faults all huge pages up front —
// construction fails immediately when the class is not configured or not
// enough reserved pages are free, rather than SIGBUS-ing on first touch.
//
// # Kernel configuration
//
// Which classes a host supports is kernel configuration, visible under
// /sys/kernel/mm/hugepages (one hugepages-<size>kB directory per configured
// class). This package does not inspect that surface: the caller chooses a
// Size it knows to be enabled, and New simply surfaces the kernel's error
// when it is not. See
// https://www.kernel.org/doc/Documentation/admin-guide/mm/hugetlbpage.rst
// and the mmap(2) man page.
//
// # Lifecycle
//
//	r, err := hugetlb.New(hugetlb.Size2MB)
//	if err != nil {
//	    return err
//	}
//	defer r.Free()
//	buf := r.Bytes() // len(buf) == r.Capacity() == 2<<20
//
// As in package anonmap, Release is the primary, fallible teardown: on
// munmap failure the still-live handle rides back inside the *ReleaseError.
// Free discards the error for callers that do not care. A Region has one
// owner; pass *Region, never copy the struct while the mapping is live.
//
// Only 64-bit Linux targets are supported: the 2GB and 16GB class
// magnitudes do not fit a 32-bit int.
package hugetlb

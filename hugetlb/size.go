//go:build linux && !386 && !arm && !mips && !mipsle

package hugetlb

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Size selects one of the kernel's huge-page size classes. It is the
// responsibility of the application to know, from kernel configuration,
// which classes are enabled on the running system; New performs no such
// check and relays the kernel's error when a class is unavailable.
type Size int

const (
	Size64KB Size = iota
	Size512KB
	Size1MB
	Size2MB
	Size8MB
	Size16MB
	Size32MB
	Size256MB
	Size512MB
	Size1GB
	Size2GB
	Size16GB
)

// classes pairs every size class with its byte magnitude and the base-2 log
// of that magnitude. mmap wants the log encoded in the six flag bits at
// MAP_HUGE_SHIFT; deriving both values from one table keeps a class's
// magnitude and flag from ever drifting apart.
var classes = [...]struct {
	bytes int
	log2  uint
	name  string
}{
	Size64KB:  {64 << 10, 16, "64KB"},
	Size512KB: {512 << 10, 19, "512KB"},
	Size1MB:   {1 << 20, 20, "1MB"},
	Size2MB:   {2 << 20, 21, "2MB"},
	Size8MB:   {8 << 20, 23, "8MB"},
	Size16MB:  {16 << 20, 24, "16MB"},
	Size32MB:  {32 << 20, 25, "32MB"},
	Size256MB: {256 << 20, 28, "256MB"},
	Size512MB: {512 << 20, 29, "512MB"},
	Size1GB:   {1 << 30, 30, "1GB"},
	Size2GB:   {2 << 30, 31, "2GB"},
	Size16GB:  {16 << 30, 34, "16GB"},
}

func (s Size) valid() bool {
	return s >= 0 && int(s) < len(classes)
}

// Bytes returns the class's magnitude in bytes, e.g. 2097152 for Size2MB.
func (s Size) Bytes() int {
	if !s.valid() {
		return 0
	}
	return classes[s].bytes
}

// flag returns the MAP_HUGE_* flag value for the class, ready to OR into
// the mmap flags next to MAP_HUGETLB.
func (s Size) flag() int {
	return int(classes[s].log2) << unix.MAP_HUGE_SHIFT
}

func (s Size) String() string {
	if !s.valid() {
		return fmt.Sprintf("Size(%d)", int(s))
	}
	return classes[s].name
}

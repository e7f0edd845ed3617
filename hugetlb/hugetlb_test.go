//go:build linux && !386 && !arm && !mips && !mipsle

package hugetlb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/joshuapare/memkit/internal/sysfs"
)

// sizeForBytes maps a configured kernel page size back onto our enum.
func sizeForBytes(bytes int) (Size, bool) {
	for _, s := range allSizes {
		if s.Bytes() == bytes {
			return s, true
		}
	}
	return 0, false
}

// mappableSize finds the smallest size class that is both configured on the
// host and has at least one free reserved page, and skips the test when
// there is none. Huge-page availability is host configuration, not
// something a test can assume.
func mappableSize(t *testing.T) Size {
	t.Helper()

	configured, err := sysfs.Sizes()
	if err != nil {
		t.Skipf("no hugepages sysfs surface: %v", err)
	}
	for _, bytes := range configured {
		s, ok := sizeForBytes(bytes)
		if !ok {
			continue
		}
		free, err := sysfs.FreePages(bytes)
		if err != nil || free < 1 {
			continue
		}
		return s
	}
	t.Skip("no huge-page class with free pages on this host")
	return 0
}

func TestNewInvalidSize(t *testing.T) {
	for _, s := range []Size{Size(-1), Size(12), Size(99)} {
		r, err := New(s)
		require.Nil(t, r)

		var mapErr *MapError
		require.ErrorAs(t, err, &mapErr)
		require.Equal(t, s, mapErr.Size)
		require.ErrorIs(t, err, unix.EINVAL)
	}
}

func TestNewUnconfiguredClassFails(t *testing.T) {
	configured, err := sysfs.Sizes()
	if err != nil {
		t.Skipf("no hugepages sysfs surface: %v", err)
	}
	have := make(map[int]bool, len(configured))
	for _, b := range configured {
		have[b] = true
	}

	var unconfigured Size = -1
	for _, s := range allSizes {
		if !have[s.Bytes()] {
			unconfigured = s
			break
		}
	}
	if unconfigured < 0 {
		t.Skip("every size class is configured on this host")
	}

	r, err := New(unconfigured)
	require.Nil(t, r)

	var mapErr *MapError
	require.ErrorAs(t, err, &mapErr)
	require.Equal(t, unconfigured, mapErr.Size)
	require.Error(t, mapErr.Err)
}

func TestCapacityAndRoundTrip(t *testing.T) {
	size := mappableSize(t)

	r, err := New(size)
	if err != nil {
		// Pages can vanish between the sysfs read and the mmap.
		t.Skipf("mapping %s region: %v", size, err)
	}

	require.Equal(t, size, r.Size())
	require.Equal(t, size.Bytes(), r.Capacity())
	require.Len(t, r.Bytes(), r.Capacity())
	require.NotNil(t, r.Ptr())

	// Freshly mapped huge pages are zero-filled.
	b := r.Bytes()
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d is %#x, want 0", i, v)
		}
	}

	// Pattern round-trip across the full capacity.
	for i := range b {
		b[i] = byte(i*131 + 3)
	}
	for i := range b {
		if b[i] != byte(i*131+3) {
			t.Fatalf("byte %d: got %#x, want %#x", i, b[i], byte(i*131+3))
		}
	}

	require.NoError(t, r.Release())
}

func TestReleaseIsSingleUse(t *testing.T) {
	size := mappableSize(t)

	r, err := New(size)
	if err != nil {
		t.Skipf("mapping %s region: %v", size, err)
	}

	require.NoError(t, r.Release())

	require.ErrorIs(t, r.Release(), ErrReleased)
	require.Nil(t, r.Bytes())
	require.Nil(t, r.Ptr())

	// The size policy survives release; only the mapping is gone.
	require.Equal(t, size.Bytes(), r.Capacity())
}

func TestReleaseFailureReturnsHandle(t *testing.T) {
	size := mappableSize(t)

	r, err := New(size)
	if err != nil {
		t.Skipf("mapping %s region: %v", size, err)
	}
	defer r.Free()

	// Corrupt the stored capability so the unmap is rejected: a shortened
	// slice no longer matches the mapping bookkeeping and munmap refuses
	// it with EINVAL, leaving the mapping live.
	orig := r.data
	r.data = orig[:len(orig)-1]

	relErr := r.Release()
	require.Error(t, relErr)

	var re *ReleaseError
	require.ErrorAs(t, relErr, &re)
	require.ErrorIs(t, relErr, unix.EINVAL)

	// Same handle, unchanged by the failed attempt.
	require.Same(t, r, re.Region)
	require.Equal(t, size, re.Region.Size())
	require.Len(t, re.Region.data, size.Bytes()-1)

	r.data = orig
	require.NoError(t, r.Release())
}

func TestFreeDiscardsAndDisarms(t *testing.T) {
	size := mappableSize(t)

	r, err := New(size)
	if err != nil {
		t.Skipf("mapping %s region: %v", size, err)
	}

	r.Free()
	require.Nil(t, r.Bytes())

	r.Free()
	require.ErrorIs(t, r.Release(), ErrReleased)
}

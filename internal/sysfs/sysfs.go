//go:build linux

// Package sysfs reads the kernel's huge-page configuration surface under
// /sys/kernel/mm/hugepages. The kernel exposes one hugepages-<size>kB
// directory per configured size class; tests use this to skip classes the
// host has not enabled instead of guessing.
package sysfs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const hugepagesDir = "/sys/kernel/mm/hugepages"

// Sizes returns the huge-page sizes configured on the running kernel, in
// bytes, ascending. A missing hugepages directory (kernel built without
// HugeTLB) is an error, not an empty result.
func Sizes() ([]int, error) {
	return sizesIn(hugepagesDir)
}

func sizesIn(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("sysfs: read hugepages dir: %w", err)
	}
	var sizes []int
	for _, e := range entries {
		kb, ok := parseSizeDir(e.Name())
		if !ok {
			continue
		}
		sizes = append(sizes, kb*1024)
	}
	sort.Ints(sizes)
	return sizes, nil
}

// parseSizeDir extracts the page size in kB from a directory name of the
// form "hugepages-2048kB".
func parseSizeDir(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "hugepages-")
	if !ok {
		return 0, false
	}
	kbStr, ok := strings.CutSuffix(rest, "kB")
	if !ok {
		return 0, false
	}
	kb, err := strconv.Atoi(kbStr)
	if err != nil || kb <= 0 {
		return 0, false
	}
	return kb, true
}

// FreePages returns the free_hugepages count for the size class of the
// given byte magnitude. It fails if the class is not configured.
func FreePages(bytes int) (int, error) {
	return freePagesIn(hugepagesDir, bytes)
}

func freePagesIn(dir string, bytes int) (int, error) {
	path := filepath.Join(dir, fmt.Sprintf("hugepages-%dkB", bytes/1024), "free_hugepages")
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("sysfs: read free_hugepages: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("sysfs: parse free_hugepages %q: %w", strings.TrimSpace(string(raw)), err)
	}
	return n, nil
}

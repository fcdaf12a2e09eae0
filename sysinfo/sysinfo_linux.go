//go:build linux
// +build linux

// File: sysinfo/sysinfo_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux memory probe via sysinfo(2).

package sysinfo

import (
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

func probeMemoryPlatform() (total uint64, loadPct uint32) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, 0
	}
	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	total = uint64(info.Totalram) * unit
	if info.Totalram > 0 {
		used := uint64(info.Totalram-info.Freeram) * unit
		loadPct = uint32(used * 100 / total)
	}
	return total, loadPct
}

// probeHyperThreadPlatform inspects cpu0's sibling list: more than one
// logical processor per core means SMT is active.
func probeHyperThreadPlatform() bool {
	data, err := os.ReadFile("/sys/devices/system/cpu/cpu0/topology/thread_siblings_list")
	if err != nil {
		return false
	}
	list := strings.TrimSpace(string(data))
	return strings.ContainsAny(list, ",-")
}

//go:build !linux && !windows
// +build !linux,!windows

// File: sysinfo/sysinfo_stub.go
// Author: momentics <momentics@gmail.com>
//
// Memory probe stub for platforms without a wired probe.

package sysinfo

func probeMemoryPlatform() (total uint64, loadPct uint32) {
	return 0, 0
}

func probeHyperThreadPlatform() bool { return false }

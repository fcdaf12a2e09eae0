//go:build windows
// +build windows

// File: sysinfo/sysinfo_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows memory probe via GlobalMemoryStatusEx.

package sysinfo

import (
	"syscall"
	"unsafe"
)

var procGlobalMemoryStatusEx = syscall.NewLazyDLL("kernel32.dll").NewProc("GlobalMemoryStatusEx")

// memoryStatusEx mirrors MEMORYSTATUSEX from sysinfoapi.h.
type memoryStatusEx struct {
	Length               uint32
	MemoryLoad           uint32
	TotalPhys            uint64
	AvailPhys            uint64
	TotalPageFile        uint64
	AvailPageFile        uint64
	TotalVirtual         uint64
	AvailVirtual         uint64
	AvailExtendedVirtual uint64
}

func probeMemoryPlatform() (total uint64, loadPct uint32) {
	var status memoryStatusEx
	status.Length = uint32(unsafe.Sizeof(status))
	ret, _, _ := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&status)))
	if ret == 0 {
		return 0, 0
	}
	return status.TotalPhys, status.MemoryLoad
}

// probeHyperThreadPlatform requires GetLogicalProcessorInformation; not
// wired on Windows yet.
func probeHyperThreadPlatform() bool { return false }

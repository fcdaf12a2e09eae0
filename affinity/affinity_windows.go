//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows implementation of thread affinity and priority via kernel32.
// Uses the GetCurrentThread pseudo-handle, so calls always address the
// thread the worker goroutine is locked to.
//
// Reference: https://learn.microsoft.com/en-us/windows/win32/api/processthreadsapi/

package affinity

import (
	"syscall"

	"github.com/momentics/hioload-threads/api"
)

var (
	kernel32                    = syscall.NewLazyDLL("kernel32.dll")
	procGetCurrentThread        = kernel32.NewProc("GetCurrentThread")
	procSetThreadAffinityMask   = kernel32.NewProc("SetThreadAffinityMask")
	procSetThreadIdealProcessor = kernel32.NewProc("SetThreadIdealProcessor")
	procSetThreadPriority       = kernel32.NewProc("SetThreadPriority")
)

// Windows thread priority levels, per processthreadsapi.h.
const (
	threadPriorityBelowNormal  = -1
	threadPriorityNormal       = 0
	threadPriorityAboveNormal  = 1
	threadPriorityHighest      = 2
	threadPriorityTimeCritical = 15
)

var winPriorityByClass = map[api.Priority]int{
	api.PriorityLow:          threadPriorityBelowNormal,
	api.PriorityNormal:       threadPriorityNormal,
	api.PriorityHigh:         threadPriorityAboveNormal,
	api.PriorityCritical:     threadPriorityHighest,
	api.PriorityTimeCritical: threadPriorityTimeCritical,
}

func currentThread() uintptr {
	h, _, _ := procGetCurrentThread.Call()
	return h
}

// setAffinityMaskPlatform installs the mask on the current thread.
func setAffinityMaskPlatform(mask uint64) error {
	ret, _, err := procSetThreadAffinityMask.Call(currentThread(), uintptr(mask))
	if ret == 0 {
		return err
	}
	return nil
}

// setIdealCorePlatform sets the scheduler's preferred processor without
// restricting the thread to it.
func setIdealCorePlatform(core int) error {
	const idealProcessorFailed = uintptr(0xFFFFFFFF) // (DWORD)-1
	ret, _, err := procSetThreadIdealProcessor.Call(currentThread(), uintptr(core))
	if ret == idealProcessorFailed {
		return err
	}
	return nil
}

// setPriorityPlatform applies the mapped THREAD_PRIORITY_* level.
func setPriorityPlatform(prio api.Priority) error {
	level, ok := winPriorityByClass[prio]
	if !ok {
		return api.ErrInvalidArgument
	}
	ret, _, err := procSetThreadPriority.Call(currentThread(), uintptr(level))
	if ret == 0 {
		return err
	}
	return nil
}

// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for applying task execution properties (priority,
// CPU affinity) to the calling OS thread. Platform-specific implementations
// are located in separate files (affinity_linux.go, affinity_windows.go,
// etc.) guarded by build tags.
//
// All application is best-effort: OS errors are reported to the caller but
// workers swallow them by contract. The calling goroutine must be locked to
// its OS thread (runtime.LockOSThread) for the calls to be meaningful.

package affinity

import (
	"runtime"

	"github.com/momentics/hioload-threads/api"
)

// Apply installs the given execution properties on the current OS thread:
// hard affinity applies the mask, soft affinity applies the ideal core, and
// the priority class is applied unconditionally via the platform mapping
// table. A hard mask of zero is a no-op rather than a forbid-all.
func Apply(props *api.ExecutionProps) error {
	if props == nil {
		return api.ErrInvalidArgument
	}
	switch props.AffinityMode() {
	case api.AffinityHard:
		if mask := props.AffinityMask(); mask != 0 {
			if err := setAffinityMaskPlatform(mask); err != nil {
				return err
			}
		}
	case api.AffinitySoft:
		if core := props.IdealCore(); core >= 0 && core < LogicalCPUCount() {
			if err := setIdealCorePlatform(core); err != nil {
				return err
			}
		}
	}
	return SetPriority(props.Priority())
}

// SetPriority applies the abstract priority class to the current OS thread
// using the fixed per-platform mapping.
func SetPriority(prio api.Priority) error {
	return setPriorityPlatform(prio)
}

// SetAffinityMask restricts the current OS thread to the cores set in mask.
func SetAffinityMask(mask uint64) error {
	if mask == 0 {
		return nil
	}
	return setAffinityMaskPlatform(mask)
}

// LogicalCPUCount returns the number of logical CPUs, at least 1.
func LogicalCPUCount() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux implementation of thread affinity and priority, pure Go via
// golang.org/x/sys/unix. sched_setaffinity with pid 0 targets the calling
// thread, which is why callers must hold runtime.LockOSThread.
//
// Priority: SCHED_OTHER ignores sched_priority, so the abstract classes map
// onto nice values with the same monotonic ordering (lower nice = higher
// priority). Raising priority above nice 0 requires CAP_SYS_NICE; failures
// are surfaced to the caller and swallowed by workers per contract.

package affinity

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-threads/api"
)

// niceByPriority maps the abstract classes to nice values, preserving the
// contract's monotonic ordering on a platform where SCHED_OTHER carries no
// usable sched_priority.
var niceByPriority = map[api.Priority]int{
	api.PriorityLow:          10,
	api.PriorityNormal:       0,
	api.PriorityHigh:         -5,
	api.PriorityCritical:     -10,
	api.PriorityTimeCritical: -20,
}

// setAffinityMaskPlatform restricts the calling thread to the cores set in
// mask, translated bit-by-bit into a cpu set.
func setAffinityMaskPlatform(mask uint64) error {
	var set unix.CPUSet
	set.Zero()
	for cpu := 0; cpu < 64; cpu++ {
		if mask&(1<<uint(cpu)) != 0 {
			set.Set(cpu)
		}
	}
	return unix.SchedSetaffinity(0, &set)
}

// setIdealCorePlatform pins the calling thread to the single ideal core.
// Linux has no soft ideal-processor concept; a single-core pin is the
// documented deviation.
func setIdealCorePlatform(core int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(core)
	return unix.SchedSetaffinity(0, &set)
}

// setPriorityPlatform applies the nice value for the class to the calling
// thread (PRIO_PROCESS with the kernel tid addresses one thread on Linux).
func setPriorityPlatform(prio api.Priority) error {
	nice, ok := niceByPriority[prio]
	if !ok {
		return api.ErrInvalidArgument
	}
	return unix.Setpriority(unix.PRIO_PROCESS, unix.Gettid(), nice)
}

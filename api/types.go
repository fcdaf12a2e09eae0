// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared enumerations for worker status, scheduling priority, processor
// affinity mode, and advisory platform identifiers.

package api

// ThreadStatus enumerates the lifecycle state of a pool worker.
type ThreadStatus int32

const (
	// StatusNotExecuting marks an idle worker, ready to accept work.
	StatusNotExecuting ThreadStatus = iota
	// StatusExecuting marks a worker currently running a task.
	StatusExecuting
	// StatusPurging marks a worker between task completion and recycling.
	StatusPurging
	// StatusPausing marks a worker suspended by a pause request.
	StatusPausing
	// StatusNone is returned by lookups that do not match any worker.
	StatusNone
)

func (s ThreadStatus) String() string {
	switch s {
	case StatusNotExecuting:
		return "not-executing"
	case StatusExecuting:
		return "executing"
	case StatusPurging:
		return "purging"
	case StatusPausing:
		return "pausing"
	default:
		return "none"
	}
}

// Priority is the abstract scheduling class of a task. The per-platform
// mapping is fixed and part of the external contract: see affinity.Apply.
type Priority int32

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
	PriorityCritical
	PriorityTimeCritical
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	case PriorityTimeCritical:
		return "time-critical"
	default:
		return "unknown"
	}
}

// AffinityMode selects how a task's ideal core is applied to the OS thread.
type AffinityMode int32

const (
	// AffinitySoft requests the ideal processor without excluding others.
	// On platforms without an ideal-processor concept the thread is pinned
	// to the single ideal core instead.
	AffinitySoft AffinityMode = iota
	// AffinityHard restricts the thread to the affinity mask.
	AffinityHard
	// AffinityUndefined leaves placement to the OS scheduler.
	AffinityUndefined
)

func (m AffinityMode) String() string {
	switch m {
	case AffinitySoft:
		return "soft"
	case AffinityHard:
		return "hard"
	default:
		return "undefined"
	}
}

// PlatformID is an advisory platform tag carried by pool creation calls.
// The effective platform binding is always selected at build time; the id
// is retained for diagnostics only.
type PlatformID int32

const (
	PlatformWindows PlatformID = iota
	PlatformNone
)

func (p PlatformID) String() string {
	if p == PlatformWindows {
		return "windows"
	}
	return "none"
}

// Wait result codes returned by the pool and worker wait operations.
const (
	WaitDone    uint32 = 0
	WaitTimeout uint32 = 1
	WaitError   uint32 = 2
)

// WaitForever is the timeout sentinel meaning "no deadline". Any negative
// timeout is treated the same way.
const WaitForever = -1

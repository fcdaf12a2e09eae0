// File: api/pool.go
// Package api defines the pool surface contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "time"

// Pool is the public surface of the worker-pool runtime. threadpool.Pool is
// the canonical implementation; the facade forwards to it.
type Pool interface {
	// SubmitCallback enqueues a callback task. Returns false when the pool
	// is locked, full, or shut down; the queues are not mutated on refusal.
	SubmitCallback(cb Callback) bool

	// SubmitRunnable enqueues an object task by handle. Same refusal
	// semantics as SubmitCallback.
	SubmitRunnable(obj Runnable) bool

	// AnyWorking reports whether any worker is neither available (idle or
	// purging) nor pausing.
	AnyWorking() bool

	// IsPoolEmpty reports whether all four submission queues are empty.
	IsPoolEmpty() bool

	// TaskCount returns the length of the fresh object queue.
	TaskCount() int
	// MissedTaskCount returns the length of the missed object queue.
	MissedTaskCount() int
	// AvailableCount counts workers that are idle or purging.
	AvailableCount() int
	// MaxThreadCount returns the configured worker count.
	MaxThreadCount() int
	// SpecificStatusCount counts workers in exactly the given status.
	SpecificStatusCount(s ThreadStatus) int

	// Pause, Resume, Terminate and Status operate on the worker currently
	// holding obj; misses are silent no-ops (Status returns StatusNone).
	Pause(obj Runnable)
	Resume(obj Runnable)
	Terminate(obj Runnable)
	Status(obj Runnable) ThreadStatus

	// Wait blocks until the worker running obj completes, the timeout
	// elapses, or the pool shuts down. A negative timeout waits forever.
	Wait(obj Runnable, timeout time.Duration) uint32

	// PauseAll, SuspendAll lock submissions and suspend non-idle workers.
	// ResumeAll wakes them but deliberately leaves submissions locked;
	// UnlockSubmissions reopens intake.
	PauseAll()
	SuspendAll()
	ResumeAll()
	TerminateAll()
	UnlockSubmissions()

	GracefulShutdown
}

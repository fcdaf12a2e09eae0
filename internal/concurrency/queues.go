// File: internal/concurrency/queues.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Submission queues: four bounded FIFOs, fresh and missed, for callback
// and object tasks. Not internally synchronized; the pool mutex serializes
// every access. Capacity admits while the combined fresh and missed length
// of the task's kind is < maxTasks.

package concurrency

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-threads/api"
)

// DefaultMaxTasks bounds each task kind when no explicit capacity is given.
const DefaultMaxTasks = 25

// SubmissionQueues holds the fresh and missed FIFOs for both task kinds.
type SubmissionQueues struct {
	maxTasks int

	freshCB   *queue.Queue
	missedCB  *queue.Queue
	freshObj  *queue.Queue
	missedObj *queue.Queue
}

// NewSubmissionQueues creates empty queues bounded by maxTasks.
func NewSubmissionQueues(maxTasks int) *SubmissionQueues {
	if maxTasks <= 0 {
		maxTasks = DefaultMaxTasks
	}
	return &SubmissionQueues{
		maxTasks:  maxTasks,
		freshCB:   queue.New(),
		missedCB:  queue.New(),
		freshObj:  queue.New(),
		missedObj: queue.New(),
	}
}

// MaxTasks returns the capacity bound shared by the fresh and missed queues
// of one task kind.
func (s *SubmissionQueues) MaxTasks() int { return s.maxTasks }

// PushCallback appends a callback task to the fresh queue. The capacity
// bound covers resident callbacks of both queues, so a sweep displacing
// fresh items to the missed queue does not widen admission.
func (s *SubmissionQueues) PushCallback(cb api.Callback) bool {
	if s.freshCB.Length()+s.missedCB.Length() >= s.maxTasks {
		return false
	}
	s.freshCB.Add(cb)
	return true
}

// PushRunnable appends an object task to the fresh queue, bounded by the
// resident object tasks of both queues. A handle still sitting in the
// missed queue is refused, so the same handle never resides in fresh and
// missed simultaneously.
func (s *SubmissionQueues) PushRunnable(obj api.Runnable) bool {
	if s.freshObj.Length()+s.missedObj.Length() >= s.maxTasks {
		return false
	}
	if s.containsRunnable(s.missedObj, obj) {
		return false
	}
	s.freshObj.Add(obj)
	return true
}

func (s *SubmissionQueues) containsRunnable(q *queue.Queue, obj api.Runnable) bool {
	for i := 0; i < q.Length(); i++ {
		if q.Get(i).(api.Runnable) == obj {
			return true
		}
	}
	return false
}

// FreshCallbacks returns the fresh callback queue length.
func (s *SubmissionQueues) FreshCallbacks() int { return s.freshCB.Length() }

// MissedCallbacks returns the missed callback queue length.
func (s *SubmissionQueues) MissedCallbacks() int { return s.missedCB.Length() }

// FreshRunnables returns the fresh object queue length.
func (s *SubmissionQueues) FreshRunnables() int { return s.freshObj.Length() }

// MissedRunnables returns the missed object queue length.
func (s *SubmissionQueues) MissedRunnables() int { return s.missedObj.Length() }

// Empty reports whether all four queues are empty.
func (s *SubmissionQueues) Empty() bool {
	return s.freshCB.Length() == 0 && s.missedCB.Length() == 0 &&
		s.freshObj.Length() == 0 && s.missedObj.Length() == 0
}

// Clear drops all queued tasks. Used by pool shutdown.
func (s *SubmissionQueues) Clear() {
	for s.freshCB.Length() > 0 {
		s.freshCB.Remove()
	}
	for s.missedCB.Length() > 0 {
		s.missedCB.Remove()
	}
	for s.freshObj.Length() > 0 {
		s.freshObj.Remove()
	}
	for s.missedObj.Length() > 0 {
		s.missedObj.Remove()
	}
}

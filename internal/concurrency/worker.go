// File: internal/concurrency/worker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Worker is one long-lived OS thread executing tasks published to its
// single-slot mailboxes. The goroutine is locked to its thread for the
// whole lifetime so that per-task priority and affinity changes address a
// stable thread. Assignment hand-off uses versioned mailboxes plus a
// condvar park; the park predicate re-checks mailbox versions under the
// worker mutex, so a publication racing the park is never lost.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-threads/affinity"
	"github.com/momentics/hioload-threads/api"
)

// waitPollSlice bounds each poll interval of WaitCompleted.
const waitPollSlice = 100 * time.Millisecond

// Worker owns one OS thread. All mailbox writes happen under the worker
// mutex via the Publish methods; the pool additionally serializes
// publishers with its own mutex.
type Worker struct {
	status    atomic.Int32 // api.ThreadStatus
	suspended atomic.Bool  // park flag, toggled by the handoff protocol
	held      atomic.Bool  // external suspension; held workers are not claimable
	stop      atomic.Bool

	mu   sync.Mutex
	cond *sync.Cond

	// Mailboxes. A non-zero version marks an unread assignment.
	nextRunnable    api.Runnable
	runnableVersion atomic.Int32
	nextCallback    api.Callback
	callbackVersion atomic.Int32

	// currentObj is the object task presently held by the worker, kept
	// visible for per-object lookup until the checkpoint after Execute.
	currentObj api.Runnable // guarded by mu
	runningCB  bool         // guarded by mu

	stopped  chan struct{}
	termOnce sync.Once
}

// NewWorker returns an idle, parked worker. Start launches its thread.
func NewWorker() *Worker {
	w := &Worker{stopped: make(chan struct{})}
	w.cond = sync.NewCond(&w.mu)
	w.status.Store(int32(api.StatusNotExecuting))
	w.suspended.Store(true)
	return w
}

// Start launches the worker thread.
func (w *Worker) Start() {
	go w.run()
}

// run is the worker main loop. The OS thread is deliberately left locked
// on exit: task bodies may have altered thread priority or affinity, and a
// locked goroutine exiting retires the tainted thread with it.
func (w *Worker) run() {
	runtime.LockOSThread()
	defer close(w.stopped)

	for !w.stop.Load() {
		if obj, ok := w.takeRunnable(); ok {
			w.executeRunnable(obj)
			continue
		}
		if cb, ok := w.takeCallback(); ok {
			w.executeCallback(cb)
			continue
		}
		w.park()
	}
	w.status.Store(int32(api.StatusNotExecuting))
}

// takeRunnable consumes the object mailbox, installing the task as the
// worker's current object.
func (w *Worker) takeRunnable() (api.Runnable, bool) {
	if w.runnableVersion.Load() == 0 {
		return nil, false
	}
	w.mu.Lock()
	obj := w.nextRunnable
	w.nextRunnable = nil
	w.runnableVersion.Add(-1)
	w.currentObj = obj
	w.mu.Unlock()
	return obj, obj != nil
}

// takeCallback consumes the callback mailbox into a local slot.
func (w *Worker) takeCallback() (api.Callback, bool) {
	if w.callbackVersion.Load() == 0 {
		return api.Callback{}, false
	}
	w.mu.Lock()
	cb := w.nextCallback
	w.nextCallback = api.Callback{}
	w.callbackVersion.Add(-1)
	w.runningCB = cb.Fn != nil
	w.mu.Unlock()
	return cb, cb.Fn != nil
}

// executeRunnable applies the task's execution properties to this thread,
// runs the body, honors a pause issued mid-task at the end-of-task
// checkpoint, then transitions to purging.
func (w *Worker) executeRunnable(obj api.Runnable) {
	props := obj.ExecutionProps()
	_ = affinity.Apply(props) // best-effort by contract
	invoke(obj.Execute)

	// Checkpoint: a pause issued during the task parks here with the
	// object still visible to lookups.
	if api.ThreadStatus(w.status.Load()) == api.StatusPausing && !w.stop.Load() {
		w.park()
	}

	w.mu.Lock()
	w.currentObj = nil
	w.mu.Unlock()
	w.status.Store(int32(api.StatusPurging))
}

// executeCallback runs a callback task with the same checkpoint handling.
func (w *Worker) executeCallback(cb api.Callback) {
	invoke(func() { cb.Fn(cb.Arg, cb.OwnsArg) })

	if api.ThreadStatus(w.status.Load()) == api.StatusPausing && !w.stop.Load() {
		w.park()
	}

	w.mu.Lock()
	w.runningCB = false
	w.mu.Unlock()
	w.status.Store(int32(api.StatusPurging))
}

// invoke contains task panics so a failing body never poisons the worker.
func invoke(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// park blocks until unparked or stopped. The predicate re-checks mailbox
// versions so a publication between the caller's last mailbox check and
// the wait cannot be lost.
func (w *Worker) park() {
	w.mu.Lock()
	w.suspended.Store(true)
	for w.suspended.Load() && !w.stop.Load() && !w.hasPendingLocked() {
		w.cond.Wait()
	}
	w.mu.Unlock()
}

func (w *Worker) hasPendingLocked() bool {
	return w.runnableVersion.Load() != 0 || w.callbackVersion.Load() != 0
}

// PublishRunnable deposits an object assignment and unparks the worker.
// The caller serializes publications (pool mutex) and must have claimed
// the worker while idle.
func (w *Worker) PublishRunnable(obj api.Runnable) {
	w.mu.Lock()
	w.nextRunnable = obj
	w.runnableVersion.Add(1)
	w.status.Store(int32(api.StatusExecuting))
	w.suspended.Store(false)
	w.mu.Unlock()
	w.cond.Signal()
}

// PublishCallback deposits a callback assignment and unparks the worker.
func (w *Worker) PublishCallback(cb api.Callback) {
	w.mu.Lock()
	w.nextCallback = cb
	w.callbackVersion.Add(1)
	w.status.Store(int32(api.StatusExecuting))
	w.suspended.Store(false)
	w.mu.Unlock()
	w.cond.Signal()
}

// Suspend requests the worker to park at its next checkpoint without
// changing its status. A suspended worker is excluded from dispatch until
// Resume.
func (w *Worker) Suspend() {
	w.held.Store(true)
	w.suspended.Store(true)
}

// Pause marks the worker pausing and requests a park at the next
// checkpoint. Pausing is cooperative at task boundaries.
func (w *Worker) Pause() {
	w.held.Store(true)
	w.status.Store(int32(api.StatusPausing))
	w.suspended.Store(true)
}

// Held reports whether the worker is externally suspended.
func (w *Worker) Held() bool { return w.held.Load() }

// Resume wakes a suspended worker. The status returns to executing when a
// task is still held, not-executing otherwise.
func (w *Worker) Resume() {
	w.held.Store(false)
	w.mu.Lock()
	if w.currentObj != nil || w.runningCB || w.hasPendingLocked() {
		w.status.Store(int32(api.StatusExecuting))
	} else {
		w.status.Store(int32(api.StatusNotExecuting))
	}
	w.suspended.Store(false)
	w.mu.Unlock()
	w.cond.Signal()
}

// Terminate requests a cooperative stop and joins the thread. A running
// task body completes before the thread exits.
func (w *Worker) Terminate() {
	w.termOnce.Do(func() {
		w.stop.Store(true)
		w.mu.Lock()
		w.suspended.Store(false)
		w.mu.Unlock()
		w.cond.Broadcast()
	})
	<-w.stopped
}

// Stopped reports whether a stop was requested; stopped workers are never
// claimed by the dispatcher.
func (w *Worker) Stopped() bool { return w.stop.Load() }

// Status returns the worker status atom.
func (w *Worker) Status() api.ThreadStatus {
	return api.ThreadStatus(w.status.Load())
}

// SetStatus stores the worker status atom. Used by the dispatcher to
// promote purging workers back to idle.
func (w *Worker) SetStatus(s api.ThreadStatus) {
	w.status.Store(int32(s))
}

// CurrentObject returns the object task the worker presently holds, or nil.
func (w *Worker) CurrentObject() api.Runnable {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentObj
}

// WaitCompleted polls until the worker returns to not-executing, the
// timeout elapses, or the worker is terminated mid-wait. Negative timeout
// waits forever. Poll granularity is 100 ms.
func (w *Worker) WaitCompleted(timeout time.Duration) uint32 {
	deadline := time.Now().Add(timeout)
	for {
		if w.Status() == api.StatusNotExecuting {
			return api.WaitDone
		}
		remaining := waitPollSlice
		if timeout >= 0 {
			left := time.Until(deadline)
			if left <= 0 {
				return api.WaitTimeout
			}
			if left < remaining {
				remaining = left
			}
		}
		time.Sleep(remaining)
	}
}

// File: threadpool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool is the public worker-pool facade: a fixed set of long-lived OS
// threads, four bounded submission queues, and a dispatcher draining the
// queues onto idle workers. The pool mutex serializes queue mutations,
// submission locking, and the scan-and-act sequences of per-object
// operations. Worker status reads without the mutex are eventually
// consistent, which is sufficient for the counters.

package threadpool

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/momentics/hioload-threads/api"
	"github.com/momentics/hioload-threads/internal/concurrency"
)

// Pool owns its workers and dispatcher. Construct with New; the zero value
// is not usable.
type Pool struct {
	id  string
	cfg Config

	mu               sync.Mutex
	workers          []*concurrency.Worker
	queues           *concurrency.SubmissionQueues
	dispatcher       *concurrency.Dispatcher
	submissionLocked bool

	closed   atomic.Bool
	shutOnce sync.Once
}

// Compile-time check against the public surface contract.
var _ api.Pool = (*Pool)(nil)

// New creates the pool: MaxThreads parked workers plus the dispatcher.
// The platform id in cfg is advisory; binding is compile-selected.
func New(cfg *Config) (*Pool, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.MaxThreads <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "max threads must be positive").
			WithContext("max_threads", cfg.MaxThreads)
	}

	p := &Pool{
		id:     uuid.NewString(),
		cfg:    *cfg,
		queues: concurrency.NewSubmissionQueues(cfg.MaxTasks),
	}

	p.mu.Lock()
	for i := 0; i < p.cfg.MaxThreads; i++ {
		w := concurrency.NewWorker()
		w.Start()
		p.workers = append(p.workers, w)
	}
	p.dispatcher = concurrency.NewDispatcher(&p.mu, func() []*concurrency.Worker { return p.workers }, p.queues, p.cfg.DispatcherPeriod)
	p.mu.Unlock()

	if len(p.workers) == 0 {
		return nil, api.ErrThreadCreate
	}
	p.dispatcher.Start()

	log.Printf("[threadpool] pool %s created: workers=%d max_tasks=%d platform=%s",
		p.id, p.cfg.MaxThreads, p.queues.MaxTasks(), p.cfg.Platform)
	return p, nil
}

// ID returns the pool instance identifier used in logs and metric labels.
func (p *Pool) ID() string { return p.id }

// SubmitCallback enqueues a callback task. False when the pool is locked,
// full, or shut down; no queue mutation happens on refusal.
func (p *Pool) SubmitCallback(cb api.Callback) bool {
	if cb.Fn == nil || p.closed.Load() {
		return false
	}
	p.mu.Lock()
	ok := !p.submissionLocked && p.queues.PushCallback(cb)
	p.mu.Unlock()
	if ok {
		p.dispatcher.Notify()
	}
	return ok
}

// SubmitRunnable enqueues an object task by handle. Same refusal
// semantics as SubmitCallback. The handle must outlive its residency in
// the pool; the pool never copies or owns the object.
func (p *Pool) SubmitRunnable(obj api.Runnable) bool {
	if obj == nil || p.closed.Load() {
		return false
	}
	p.mu.Lock()
	ok := !p.submissionLocked && p.queues.PushRunnable(obj)
	p.mu.Unlock()
	if ok {
		p.dispatcher.Notify()
	}
	return ok
}

// TaskCount returns the fresh object queue length.
func (p *Pool) TaskCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queues.FreshRunnables()
}

// MissedTaskCount returns the missed object queue length.
func (p *Pool) MissedTaskCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queues.MissedRunnables()
}

// IsPoolEmpty reports whether all four submission queues are empty.
func (p *Pool) IsPoolEmpty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queues.Empty()
}

// AvailableCount counts workers that are idle or purging.
func (p *Pool) AvailableCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.availableLocked()
}

func (p *Pool) availableLocked() int {
	n := 0
	for _, w := range p.workers {
		if s := w.Status(); s == api.StatusNotExecuting || s == api.StatusPurging {
			n++
		}
	}
	return n
}

// MaxThreadCount returns the configured worker count.
func (p *Pool) MaxThreadCount() int { return p.cfg.MaxThreads }

// SpecificStatusCount counts workers in exactly the given status.
func (p *Pool) SpecificStatusCount(s api.ThreadStatus) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, w := range p.workers {
		if w.Status() == s {
			n++
		}
	}
	return n
}

// AnyWorking reports whether any worker is neither available nor pausing.
func (p *Pool) AnyWorking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	pausing := 0
	for _, w := range p.workers {
		if w.Status() == api.StatusPausing {
			pausing++
		}
	}
	return len(p.workers) != p.availableLocked()+pausing
}

// findWorker returns the worker currently holding obj, or nil. Caller
// holds the pool mutex.
func (p *Pool) findWorker(obj api.Runnable) *concurrency.Worker {
	for _, w := range p.workers {
		if w.CurrentObject() == obj {
			return w
		}
	}
	return nil
}

// Pause suspends the worker currently running obj. A miss is a silent
// no-op. Pausing is cooperative at task boundaries.
func (p *Pool) Pause(obj api.Runnable) {
	if obj == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if w := p.findWorker(obj); w != nil {
		w.Pause()
	}
}

// Resume wakes the worker currently holding obj.
func (p *Pool) Resume(obj api.Runnable) {
	if obj == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if w := p.findWorker(obj); w != nil {
		w.Resume()
	}
}

// Terminate stops the worker currently running obj. The stop is
// cooperative: the running task body completes first. The worker slot is
// retired until pool shutdown.
func (p *Pool) Terminate(obj api.Runnable) {
	if obj == nil {
		return
	}
	p.mu.Lock()
	w := p.findWorker(obj)
	p.mu.Unlock()
	if w != nil {
		w.Terminate()
	}
}

// Status returns the status of the worker holding obj, StatusNone when no
// worker holds it.
func (p *Pool) Status(obj api.Runnable) api.ThreadStatus {
	if obj == nil {
		return api.StatusNone
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if w := p.findWorker(obj); w != nil {
		return w.Status()
	}
	return api.StatusNone
}

// Wait blocks until obj completes, the timeout elapses, or the pool shuts
// down. Returns api.WaitDone when obj is not (or no longer) held by any
// worker, api.WaitTimeout on deadline, api.WaitError when the pool closes
// mid-wait. A negative timeout waits forever; granularity is 100 ms.
func (p *Pool) Wait(obj api.Runnable, timeout time.Duration) uint32 {
	if obj == nil {
		return api.WaitDone
	}
	deadline := time.Now().Add(timeout)
	for {
		if p.closed.Load() {
			return api.WaitError
		}
		p.mu.Lock()
		w := p.findWorker(obj)
		p.mu.Unlock()
		if w == nil || w.Status() == api.StatusNotExecuting {
			return api.WaitDone
		}

		slice := 100 * time.Millisecond
		if timeout >= 0 {
			left := time.Until(deadline)
			if left <= 0 {
				return api.WaitTimeout
			}
			if left < slice {
				slice = left
			}
		}
		time.Sleep(slice)
	}
}

// PauseAll locks submissions and pauses every non-idle worker.
func (p *Pool) PauseAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.submissionLocked = true
	for _, w := range p.workers {
		if w.Status() != api.StatusNotExecuting {
			w.Pause()
		}
	}
}

// SuspendAll locks submissions and suspends every non-idle worker without
// changing their status, draining the system.
func (p *Pool) SuspendAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.submissionLocked = true
	for _, w := range p.workers {
		if w.Status() != api.StatusNotExecuting {
			w.Suspend()
		}
	}
}

// ResumeAll wakes every non-idle worker. Submissions stay locked until
// UnlockSubmissions: resuming execution and reopening intake are separate
// decisions.
func (p *Pool) ResumeAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, w := range p.workers {
		if w.Status() != api.StatusNotExecuting {
			w.Resume()
		}
	}
}

// UnlockSubmissions reopens task intake after PauseAll or SuspendAll.
func (p *Pool) UnlockSubmissions() {
	p.mu.Lock()
	p.submissionLocked = false
	p.mu.Unlock()
}

// TerminateAll locks submissions and cooperatively stops every non-idle
// worker. Joins happen outside the pool mutex so task bodies touching the
// pool cannot deadlock the teardown.
func (p *Pool) TerminateAll() {
	p.mu.Lock()
	p.submissionLocked = true
	var stopping []*concurrency.Worker
	for _, w := range p.workers {
		if w.Status() != api.StatusNotExecuting {
			stopping = append(stopping, w)
		}
	}
	p.mu.Unlock()

	for _, w := range stopping {
		w.Terminate()
	}
}

// Shutdown stops the dispatcher, terminates all workers and clears the
// queues. Idempotent; repeat calls return nil.
func (p *Pool) Shutdown() error {
	p.shutOnce.Do(func() {
		p.closed.Store(true)
		p.dispatcher.Stop()

		p.mu.Lock()
		p.submissionLocked = true
		workers := make([]*concurrency.Worker, len(p.workers))
		copy(workers, p.workers)
		p.mu.Unlock()

		for _, w := range workers {
			w.Terminate()
		}

		p.mu.Lock()
		p.queues.Clear()
		p.mu.Unlock()

		log.Printf("[threadpool] pool %s shut down", p.id)
	})
	return nil
}

// ClaimIdle returns the first idle worker, optionally excising it from the
// worker sequence. Diagnostic path; the dispatcher never removes.
func (p *Pool) ClaimIdle(remove bool) *concurrency.Worker {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, w := range p.workers {
		if !w.Stopped() && !w.Held() && w.Status() == api.StatusNotExecuting {
			if remove {
				ws := make([]*concurrency.Worker, 0, len(p.workers)-1)
				ws = append(ws, p.workers[:i]...)
				ws = append(ws, p.workers[i+1:]...)
				p.workers = ws
			}
			return w
		}
	}
	return nil
}

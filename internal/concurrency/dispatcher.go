// File: internal/concurrency/dispatcher.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Dispatcher: the background thread draining submission queues onto idle
// workers. Each sweep runs under the pool mutex and handles, in order,
// missed objects, fresh objects, missed callbacks, fresh callbacks, then
// promotes purging workers back to idle. Missed items are always attempted
// before fresh items of the same kind, so a task displaced on an earlier
// sweep is never starved by later arrivals.

package concurrency

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-threads/api"
)

// DefaultPeriod is the sweep interval when the pool is quiet. Submissions
// wake the dispatcher early through Notify.
const DefaultPeriod = 10 * time.Millisecond

// Dispatcher drains queues onto idle workers on a short period.
type Dispatcher struct {
	mu      *sync.Mutex
	workers func() []*Worker
	queues  *SubmissionQueues
	period  time.Duration

	notify  chan struct{}
	stopCh  chan struct{}
	done    chan struct{}
	started atomic.Bool
}

// NewDispatcher wires a dispatcher over the pool's mutex, worker accessor
// and queues. The accessor is invoked with the pool mutex held, so the
// pool's diagnostic claim-with-remove path stays consistent with sweeps.
func NewDispatcher(mu *sync.Mutex, workers func() []*Worker, queues *SubmissionQueues, period time.Duration) *Dispatcher {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Dispatcher{
		mu:      mu,
		workers: workers,
		queues:  queues,
		period:  period,
		notify:  make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the dispatch loop.
func (d *Dispatcher) Start() {
	d.started.Store(true)
	go d.run()
}

// Notify wakes the dispatcher ahead of its period. Non-blocking; wakeups
// coalesce.
func (d *Dispatcher) Notify() {
	select {
	case d.notify <- struct{}{}:
	default:
	}
}

// Stop ends the dispatch loop and waits for it to exit. A dispatcher that
// was never started returns immediately.
func (d *Dispatcher) Stop() {
	select {
	case <-d.stopCh:
	default:
		close(d.stopCh)
	}
	if !d.started.Load() {
		return
	}
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)
	timer := time.NewTimer(d.period)
	defer timer.Stop()

	for {
		select {
		case <-d.stopCh:
			return
		case <-d.notify:
		case <-timer.C:
		}
		d.Sweep()
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(d.period)
	}
}

// Sweep runs one full dispatch pass under the pool mutex.
func (d *Dispatcher) Sweep() {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Missed objects: attempt in order, stop at the first failure to keep
	// FIFO across sweeps.
	for d.queues.missedObj.Length() > 0 {
		w := d.claimIdle()
		if w == nil {
			break
		}
		w.PublishRunnable(d.queues.missedObj.Remove().(api.Runnable))
	}

	// Fresh objects: publish or displace to the missed queue.
	for d.queues.freshObj.Length() > 0 {
		obj := d.queues.freshObj.Remove().(api.Runnable)
		if w := d.claimIdle(); w != nil {
			w.PublishRunnable(obj)
		} else {
			d.queues.missedObj.Add(obj)
		}
	}

	for d.queues.missedCB.Length() > 0 {
		w := d.claimIdle()
		if w == nil {
			break
		}
		w.PublishCallback(d.queues.missedCB.Remove().(api.Callback))
	}

	for d.queues.freshCB.Length() > 0 {
		cb := d.queues.freshCB.Remove().(api.Callback)
		if w := d.claimIdle(); w != nil {
			w.PublishCallback(cb)
		} else {
			d.queues.missedCB.Add(cb)
		}
	}

	// Promote cleanup: purging workers become claimable on the next pass.
	for _, w := range d.workers() {
		if w.Status() == api.StatusPurging {
			w.SetStatus(api.StatusNotExecuting)
		}
	}
}

// claimIdle returns the first idle worker that is neither stopped nor
// externally suspended.
func (d *Dispatcher) claimIdle() *Worker {
	for _, w := range d.workers() {
		if !w.Stopped() && !w.Held() && w.Status() == api.StatusNotExecuting {
			return w
		}
	}
	return nil
}

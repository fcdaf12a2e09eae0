// File: facade/foundation.go
// Unified facade layer for hioload-threads.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Foundation is a thin convenience wrapper owning a single pool and
// forwarding the full pool surface, together with the control plane: the
// dynamic config store drives pool creation and receives the effective
// configuration on every pool creation, and the debug probe registry is
// rebuilt over each owned pool. Clients that want explicit ownership
// construct threadpool.Pool directly; the process-wide Default instance
// exists only as optional sugar.

package facade

import (
	"sync"
	"time"

	"github.com/momentics/hioload-threads/api"
	"github.com/momentics/hioload-threads/control"
	"github.com/momentics/hioload-threads/threadpool"
)

// Foundation owns at most one pool plus its control plane.
type Foundation struct {
	mu     sync.Mutex
	pool   *threadpool.Pool
	config *control.ConfigStore
	probes *control.DebugProbes
}

// New returns an empty foundation with a primed config store.
func New() *Foundation {
	return &Foundation{config: control.NewConfigStore()}
}

var (
	defaultOnce sync.Once
	defaultInst *Foundation
)

// Default returns the process-wide foundation instance.
func Default() *Foundation {
	defaultOnce.Do(func() { defaultInst = New() })
	return defaultInst
}

// CreatePool builds the owned pool from the config store's current pool
// configuration, with maxThreads overriding the stored worker count when
// positive. The effective configuration is published back to the store
// and the debug probes are rebuilt over the new pool. Repeat calls while
// a pool exists are no-ops. Returns false when creation fails.
func (f *Foundation) CreatePool(maxThreads int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pool != nil {
		return true
	}
	cfg := f.config.PoolConfig()
	if maxThreads > 0 {
		cfg.MaxThreads = maxThreads
	}
	p, err := threadpool.New(&cfg)
	if err != nil {
		return false
	}
	f.pool = p
	f.probes = control.NewDebugProbes(p)
	control.RegisterPlatformProbes(f.probes)
	f.config.PublishPoolConfig(&cfg)
	return true
}

// LoadConfig reads a pool configuration file into the config store; the
// next CreatePool uses it. Reload listeners registered on Control fire on
// the publication.
func (f *Foundation) LoadConfig(path string) error {
	_, err := f.config.LoadFile(path)
	return err
}

// Control returns the foundation's config store.
func (f *Foundation) Control() *control.ConfigStore { return f.config }

// Debug returns the probe registry of the owned pool, or nil before
// CreatePool.
func (f *Foundation) Debug() *control.DebugProbes {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.probes
}

// Pool returns the owned pool, or nil before CreatePool.
func (f *Foundation) Pool() *threadpool.Pool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pool
}

// SubmitCallback forwards to the owned pool; false when no pool exists.
func (f *Foundation) SubmitCallback(cb api.Callback) bool {
	if p := f.Pool(); p != nil {
		return p.SubmitCallback(cb)
	}
	return false
}

// SubmitRunnable forwards to the owned pool; false when no pool exists.
func (f *Foundation) SubmitRunnable(obj api.Runnable) bool {
	if p := f.Pool(); p != nil {
		return p.SubmitRunnable(obj)
	}
	return false
}

// IsEmpty reports whether the owned pool has no queued tasks. An absent
// pool is empty.
func (f *Foundation) IsEmpty() bool {
	if p := f.Pool(); p != nil {
		return p.IsPoolEmpty()
	}
	return true
}

// AnyWorking reports whether available plus pausing workers do not cover
// the whole pool.
func (f *Foundation) AnyWorking() bool {
	p := f.Pool()
	if p == nil {
		return false
	}
	available := p.AvailableCount()
	pausing := p.SpecificStatusCount(api.StatusPausing)
	return available+pausing != p.MaxThreadCount()
}

// Pause forwards per-object pause.
func (f *Foundation) Pause(obj api.Runnable) {
	if p := f.Pool(); p != nil {
		p.Pause(obj)
	}
}

// Resume forwards per-object resume.
func (f *Foundation) Resume(obj api.Runnable) {
	if p := f.Pool(); p != nil {
		p.Resume(obj)
	}
}

// Terminate forwards per-object terminate.
func (f *Foundation) Terminate(obj api.Runnable) {
	if p := f.Pool(); p != nil {
		p.Terminate(obj)
	}
}

// Status forwards per-object status lookup; StatusNone without a pool.
func (f *Foundation) Status(obj api.Runnable) api.ThreadStatus {
	if p := f.Pool(); p != nil {
		return p.Status(obj)
	}
	return api.StatusNone
}

// Wait forwards the bounded wait; done without a pool.
func (f *Foundation) Wait(obj api.Runnable, timeout time.Duration) uint32 {
	if p := f.Pool(); p != nil {
		return p.Wait(obj, timeout)
	}
	return api.WaitDone
}

// PauseAll forwards pool-wide pause.
func (f *Foundation) PauseAll() {
	if p := f.Pool(); p != nil {
		p.PauseAll()
	}
}

// SuspendAll forwards pool-wide suspension.
func (f *Foundation) SuspendAll() {
	if p := f.Pool(); p != nil {
		p.SuspendAll()
	}
}

// ResumeAll forwards pool-wide resume. Submissions stay locked until
// UnlockSubmissions.
func (f *Foundation) ResumeAll() {
	if p := f.Pool(); p != nil {
		p.ResumeAll()
	}
}

// TerminateAll forwards pool-wide terminate.
func (f *Foundation) TerminateAll() {
	if p := f.Pool(); p != nil {
		p.TerminateAll()
	}
}

// UnlockSubmissions reopens intake on the owned pool.
func (f *Foundation) UnlockSubmissions() {
	if p := f.Pool(); p != nil {
		p.UnlockSubmissions()
	}
}

// Shutdown tears down the owned pool and forgets it along with its
// probes, allowing a fresh CreatePool. The config store survives so the
// next pool reuses the last published configuration. Idempotent.
func (f *Foundation) Shutdown() error {
	f.mu.Lock()
	p := f.pool
	f.pool = nil
	f.probes = nil
	f.mu.Unlock()
	if p != nil {
		return p.Shutdown()
	}
	return nil
}

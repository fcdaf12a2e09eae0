// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Debug probes for pool introspection. The registry is constructed over a
// pool and pre-wires its identity, statistics and queue probes; platform
// files and applications add further hooks through RegisterProbe.

package control

import "sync"

// DebugProbes exposes named snapshot hooks over a pool.
type DebugProbes struct {
	mu     sync.RWMutex
	pool   StatsProvider
	probes map[string]func() any
}

// NewDebugProbes builds the probe registry for a pool and registers the
// standard pool probes. A nil pool yields an empty registry for callers
// that only need platform or application hooks.
func NewDebugProbes(pool StatsProvider) *DebugProbes {
	dp := &DebugProbes{
		pool:   pool,
		probes: make(map[string]func() any),
	}
	if pool != nil {
		dp.probes["pool.id"] = func() any { return pool.ID() }
		dp.probes["pool.stats"] = func() any { return pool.Stats() }
		dp.probes["pool.workers.available"] = func() any { return pool.Stats().Available }
		dp.probes["pool.queue.objects"] = func() any {
			st := pool.Stats()
			return st.FreshTasks + st.MissedTasks
		}
		dp.probes["pool.queue.callbacks"] = func() any {
			st := pool.Stats()
			return st.FreshCallbacks + st.MissedCallbacks
		}
	}
	return dp
}

// RegisterProbe inserts a named debug hook, replacing any previous probe
// under the same name.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// DumpState evaluates every probe and returns the combined snapshot.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for name, fn := range dp.probes {
		out[name] = fn()
	}
	return out
}

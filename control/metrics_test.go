package control_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-threads/control"
	"github.com/momentics/hioload-threads/threadpool"
)

type staticStats struct {
	id string
	st threadpool.Stats
}

func (s *staticStats) ID() string { return s.id }

func (s *staticStats) Stats() threadpool.Stats { return s.st }

func TestPoolCollector(t *testing.T) {
	pool := &staticStats{
		id: "test-pool",
		st: threadpool.Stats{
			MaxThreads:       4,
			Available:        3,
			Executing:        1,
			FreshTasks:       2,
			MissedTasks:      1,
			SubmissionLocked: true,
		},
	}

	reg := prometheus.NewRegistry()
	if err := reg.Register(control.NewPoolCollector(pool)); err != nil {
		t.Fatalf("register: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	want := map[string]bool{
		"hioload_threads_workers":            false,
		"hioload_threads_queue_depth":        false,
		"hioload_threads_submissions_locked": false,
	}
	for _, fam := range families {
		if _, ok := want[fam.GetName()]; ok {
			want[fam.GetName()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("metric family %s not exported", name)
		}
	}
}

func TestCountersRegister(t *testing.T) {
	reg, wrapped := control.NewRegistry("p1")
	c := control.NewCounters(wrapped)
	c.SubmittedTasks.Inc()
	c.RejectedSubmits.Add(2)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("no metric families registered")
	}
}

func TestDebugProbes(t *testing.T) {
	pool := &staticStats{
		id: "probe-pool",
		st: threadpool.Stats{Available: 3, FreshTasks: 2, MissedTasks: 1, FreshCallbacks: 1},
	}

	dp := control.NewDebugProbes(pool)
	control.RegisterPlatformProbes(dp)
	dp.RegisterProbe("answer", func() any { return 42 })

	state := dp.DumpState()
	if state["pool.id"] != "probe-pool" {
		t.Errorf("pool.id probe = %v, want probe-pool", state["pool.id"])
	}
	if state["pool.workers.available"] != 3 {
		t.Errorf("pool.workers.available = %v, want 3", state["pool.workers.available"])
	}
	if state["pool.queue.objects"] != 3 {
		t.Errorf("pool.queue.objects = %v, want 3", state["pool.queue.objects"])
	}
	if state["pool.queue.callbacks"] != 1 {
		t.Errorf("pool.queue.callbacks = %v, want 1", state["pool.queue.callbacks"])
	}
	if state["answer"] != 42 {
		t.Errorf("probe output = %v, want 42", state["answer"])
	}
	if _, ok := state["platform.cpus"]; !ok {
		t.Error("platform probes not registered")
	}
}

func TestDebugProbesWithoutPool(t *testing.T) {
	dp := control.NewDebugProbes(nil)
	if len(dp.DumpState()) != 0 {
		t.Error("nil pool must yield an empty registry")
	}
}

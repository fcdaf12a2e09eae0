package facade_test

import (
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/momentics/hioload-threads/api"
	"github.com/momentics/hioload-threads/facade"
)

type countingTask struct {
	id    uint32
	props api.ExecutionProps
	runs  atomic.Int32
}

func (c *countingTask) Execute() { c.runs.Add(1) }

func (c *countingTask) ObjectID() uint32 { return c.id }

func (c *countingTask) ExecutionProps() *api.ExecutionProps { return &c.props }

func TestFoundationLifecycle(t *testing.T) {
	f := facade.New()

	// No pool yet: everything degrades gracefully.
	if f.SubmitRunnable(&countingTask{id: 1}) {
		t.Error("submit without pool should fail")
	}
	if !f.IsEmpty() || f.AnyWorking() {
		t.Error("absent pool must read as empty and idle")
	}
	if f.Status(&countingTask{id: 1}) != api.StatusNone {
		t.Error("status without pool should be none")
	}

	if !f.CreatePool(2) {
		t.Fatal("pool creation failed")
	}
	// Repeat creation is a no-op.
	if !f.CreatePool(5) {
		t.Fatal("repeat creation should succeed")
	}
	if f.Pool().MaxThreadCount() != 2 {
		t.Errorf("max threads = %d, want 2 (first creation wins)", f.Pool().MaxThreadCount())
	}

	task := &countingTask{id: 7}
	if !f.SubmitRunnable(task) {
		t.Fatal("submit failed")
	}

	deadline := time.Now().Add(time.Second)
	for task.runs.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	if task.runs.Load() != 1 {
		t.Fatal("task did not run")
	}

	if err := f.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if f.Pool() != nil {
		t.Error("shutdown must release the owned pool")
	}
	// Idempotent.
	if err := f.Shutdown(); err != nil {
		t.Fatalf("second shutdown: %v", err)
	}

	// A fresh pool can be created after shutdown.
	if !f.CreatePool(1) {
		t.Fatal("recreate after shutdown failed")
	}
	_ = f.Shutdown()
}

func TestFoundationCallback(t *testing.T) {
	f := facade.New()
	if !f.CreatePool(1) {
		t.Fatal("pool creation failed")
	}
	defer func() { _ = f.Shutdown() }()

	done := make(chan int, 1)
	v := new(int)
	*v = 42
	ok := f.SubmitCallback(api.Callback{
		Fn:  func(arg any, owns bool) { done <- *(arg.(*int)) },
		Arg: v,
	})
	if !ok {
		t.Fatal("callback submit failed")
	}
	select {
	case got := <-done:
		if got != 42 {
			t.Errorf("callback payload = %d, want 42", got)
		}
	case <-time.After(time.Second):
		t.Fatal("callback did not run")
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	if facade.Default() != facade.Default() {
		t.Error("Default must return the same instance")
	}
}

func TestFoundationControlPlane(t *testing.T) {
	f := facade.New()
	if f.Debug() != nil {
		t.Error("probes must not exist before the pool does")
	}

	// Configuration staged in the store drives pool creation.
	cfg := f.Control().PoolConfig()
	cfg.MaxThreads = 3
	reloaded := make(chan struct{}, 2)
	f.Control().OnReload(func() { reloaded <- struct{}{} })
	f.Control().PublishPoolConfig(&cfg)
	<-reloaded

	if !f.CreatePool(0) {
		t.Fatal("pool creation failed")
	}
	defer func() { _ = f.Shutdown() }()

	if f.Pool().MaxThreadCount() != 3 {
		t.Errorf("pool workers = %d, want 3 from the config store", f.Pool().MaxThreadCount())
	}

	// Creation publishes the effective configuration back.
	select {
	case <-reloaded:
	case <-time.After(time.Second):
		t.Fatal("pool creation did not publish the effective config")
	}

	state := f.Debug().DumpState()
	if state["pool.id"] != f.Pool().ID() {
		t.Errorf("pool.id probe = %v, want %s", state["pool.id"], f.Pool().ID())
	}
	if _, ok := state["platform.cpus"]; !ok {
		t.Error("platform probes not wired into the foundation registry")
	}

	if err := f.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if f.Debug() != nil {
		t.Error("shutdown must drop the probe registry")
	}
	// The store survives shutdown with the last effective config.
	if f.Control().PoolConfig().MaxThreads != 3 {
		t.Errorf("config store lost state across shutdown: %+v", f.Control().PoolConfig())
	}
}

func TestFoundationLoadConfig(t *testing.T) {
	f := facade.New()
	cfg := f.Control().PoolConfig()
	cfg.MaxThreads = 2
	f.Control().PublishPoolConfig(&cfg)

	path := filepath.Join(t.TempDir(), "pool.yaml")
	if err := f.Control().SaveFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	fresh := facade.New()
	if err := fresh.LoadConfig(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !fresh.CreatePool(0) {
		t.Fatal("pool creation failed")
	}
	defer func() { _ = fresh.Shutdown() }()

	if fresh.Pool().MaxThreadCount() != 2 {
		t.Errorf("pool workers = %d, want 2 from the loaded file", fresh.Pool().MaxThreadCount())
	}
}

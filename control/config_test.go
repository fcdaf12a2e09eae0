package control_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/momentics/hioload-threads/control"
	"github.com/momentics/hioload-threads/threadpool"
)

func TestConfigStoreDefaults(t *testing.T) {
	cs := control.NewConfigStore()
	cfg := cs.PoolConfig()
	if cfg.MaxThreads != 10 || cfg.MaxTasks != 25 {
		t.Errorf("store not primed with defaults: %+v", cfg)
	}
}

func TestConfigStorePublishAndReload(t *testing.T) {
	cs := control.NewConfigStore()

	called := make(chan struct{}, 2)
	cs.OnReload(func() { called <- struct{}{} })

	cfg := threadpool.DefaultConfig()
	cfg.MaxThreads = 4
	cs.PublishPoolConfig(cfg)

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("reload listener not invoked on publication")
	}
	if cs.PoolConfig().MaxThreads != 4 {
		t.Errorf("published MaxThreads = %d, want 4", cs.PoolConfig().MaxThreads)
	}

	cs.Set("heartbeat", "10s")
	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("reload listener not invoked on dynamic key")
	}
}

func TestConfigStoreSnapshot(t *testing.T) {
	cs := control.NewConfigStore()
	cs.Set("owner", "demo")

	snap := cs.Snapshot()
	if snap["max_threads"] != 10 {
		t.Errorf("snapshot max_threads = %v, want 10", snap["max_threads"])
	}
	if snap["owner"] != "demo" {
		t.Errorf("snapshot owner = %v, want demo", snap["owner"])
	}

	// Snapshot is a copy.
	snap["owner"] = "changed"
	if cs.Snapshot()["owner"] != "demo" {
		t.Error("snapshot mutation leaked into store")
	}
}

func TestConfigStoreFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.yaml")

	cs := control.NewConfigStore()
	cfg := threadpool.DefaultConfig()
	cfg.MaxThreads = 4
	cfg.MaxTasks = 50
	cfg.DispatcherPeriod = 20 * time.Millisecond
	cs.PublishPoolConfig(cfg)

	if err := cs.SaveFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	fresh := control.NewConfigStore()
	loaded, err := fresh.LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.MaxThreads != 4 || loaded.MaxTasks != 50 || loaded.DispatcherPeriod != 20*time.Millisecond {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
	// The load publishes into the store.
	if fresh.PoolConfig().MaxThreads != 4 {
		t.Errorf("load did not publish: %+v", fresh.PoolConfig())
	}
}

func TestConfigStoreLoadMissingFile(t *testing.T) {
	cs := control.NewConfigStore()
	if _, err := cs.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("loading a missing file should fail")
	}
	// A failed load leaves the published configuration untouched.
	if cs.PoolConfig().MaxThreads != 10 {
		t.Errorf("failed load mutated store: %+v", cs.PoolConfig())
	}
}

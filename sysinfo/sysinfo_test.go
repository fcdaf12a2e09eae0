package sysinfo_test

import (
	"runtime"
	"testing"

	"github.com/momentics/hioload-threads/sysinfo"
)

func TestDescription(t *testing.T) {
	d := sysinfo.New()
	if d.NumProcessors() < 1 {
		t.Fatalf("NumProcessors() = %d, want >= 1", d.NumProcessors())
	}
	if d.NumProcessors() != runtime.NumCPU() && runtime.NumCPU() > 0 {
		t.Errorf("NumProcessors() = %d, runtime reports %d", d.NumProcessors(), runtime.NumCPU())
	}
	if d.MemoryLoad() > 100 {
		t.Errorf("MemoryLoad() = %d, want <= 100", d.MemoryLoad())
	}
	// Either answer is valid; the probe must simply not misbehave.
	_ = d.HyperThreadAvailable()
}

func TestMemoryExceeds(t *testing.T) {
	d := sysinfo.New()
	if d.BytesPhysicalMemory() == 0 {
		t.Skip("memory probe unavailable on this platform")
	}
	if !d.MemoryExceeds(1) {
		t.Error("host should have more than 1 MB of RAM")
	}
	if d.MemoryExceeds(^uint32(0)) {
		t.Error("host should not exceed the maximal threshold")
	}
}

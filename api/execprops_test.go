package api

import (
	"runtime"
	"testing"
)

func TestExecutionPropsDefaults(t *testing.T) {
	var p ExecutionProps
	if p.AffinityMode() != AffinitySoft {
		t.Errorf("zero value affinity mode = %v, want soft", p.AffinityMode())
	}
	if p.Priority() != PriorityLow {
		t.Errorf("zero value priority = %v, want low", p.Priority())
	}
	if p.AffinityMask() != 0 {
		t.Errorf("zero value mask = %#x, want 0", p.AffinityMask())
	}
}

func TestBuildAffinityMask(t *testing.T) {
	var p ExecutionProps
	p.SetIdealCore(0)
	p.BuildAffinityMask(4)
	if p.AffinityMask() != 1 {
		t.Errorf("mask for core 0 = %#x, want 1", p.AffinityMask())
	}

	p.SetIdealCore(3)
	p.BuildAffinityMask(4)
	if p.AffinityMask() != 1<<3 {
		t.Errorf("mask for core 3 = %#x, want %#x", p.AffinityMask(), 1<<3)
	}

	// Out-of-range cores derive an empty mask.
	p.SetIdealCore(4)
	p.BuildAffinityMask(4)
	if p.AffinityMask() != 0 {
		t.Errorf("mask for out-of-range core = %#x, want 0", p.AffinityMask())
	}
	p.SetIdealCore(-1)
	p.BuildAffinityMask(4)
	if p.AffinityMask() != 0 {
		t.Errorf("mask for negative core = %#x, want 0", p.AffinityMask())
	}
}

func TestFillReplacesAllFields(t *testing.T) {
	p := NewExecutionProps(AffinityUndefined, PriorityLow, -1)
	p.Fill(AffinityHard, PriorityHigh, 0)
	if p.AffinityMode() != AffinityHard || p.Priority() != PriorityHigh || p.IdealCore() != 0 {
		t.Fatalf("fill did not replace fields: %+v", p)
	}
	if runtime.NumCPU() > 0 && p.AffinityMask() != 1 {
		t.Errorf("fill mask = %#x, want 1", p.AffinityMask())
	}
}

func TestStatusStrings(t *testing.T) {
	cases := map[ThreadStatus]string{
		StatusNotExecuting: "not-executing",
		StatusExecuting:    "executing",
		StatusPurging:      "purging",
		StatusPausing:      "pausing",
		StatusNone:         "none",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}

//go:build linux
// +build linux

package threadpool_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-threads/api"
)

// The worker thread reflects the task's latest execution properties
// immediately before the body runs: hard affinity to core 0 leaves the
// thread with mask 1.
func TestAttributeFidelityHardAffinity(t *testing.T) {
	p := newPool(t, 1, 0)

	type observation struct {
		count int
		core0 bool
	}
	observed := make(chan observation, 1)

	task := &sleepTask{id: 1}
	task.props.Fill(api.AffinityHard, api.PriorityLow, 0)
	task.onRun = func(*sleepTask) {
		var set unix.CPUSet
		if err := unix.SchedGetaffinity(0, &set); err == nil {
			observed <- observation{count: set.Count(), core0: set.IsSet(0)}
		}
	}

	require.True(t, p.SubmitRunnable(task))

	select {
	case obs := <-observed:
		assert.True(t, obs.core0, "executing thread must be restricted to core 0")
		assert.Equal(t, 1, obs.count, "affinity mask must contain exactly core 0")
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}
}

// The priority class is applied on every dispatch; the low class always
// succeeds without privileges.
func TestAttributeFidelityPriority(t *testing.T) {
	p := newPool(t, 1, 0)

	nice := make(chan int, 1)
	task := &sleepTask{id: 1}
	task.props.Fill(api.AffinityUndefined, api.PriorityLow, 0)
	task.onRun = func(*sleepTask) {
		if v, err := unix.Getpriority(unix.PRIO_PROCESS, unix.Gettid()); err == nil {
			nice <- v
		}
	}

	require.True(t, p.SubmitRunnable(task))

	select {
	case v := <-nice:
		// The raw getpriority value is 20-nice; nice 10 reads back as 10
		// either way.
		assert.Equal(t, 10, v)
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}
}

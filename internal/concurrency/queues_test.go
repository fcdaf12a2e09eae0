package concurrency

import (
	"testing"

	"github.com/momentics/hioload-threads/api"
)

func TestQueueCapacity(t *testing.T) {
	q := NewSubmissionQueues(2)
	if !q.PushRunnable(&stubTask{id: 1}) || !q.PushRunnable(&stubTask{id: 2}) {
		t.Fatal("queue refused submissions under capacity")
	}
	if q.PushRunnable(&stubTask{id: 3}) {
		t.Error("queue admitted beyond max tasks")
	}
	if q.FreshRunnables() != 2 {
		t.Errorf("fresh length = %d, want 2", q.FreshRunnables())
	}
}

func TestQueueCallbackCapacity(t *testing.T) {
	q := NewSubmissionQueues(1)
	cb := api.Callback{Fn: func(any, bool) {}}
	if !q.PushCallback(cb) {
		t.Fatal("first callback refused")
	}
	if q.PushCallback(cb) {
		t.Error("callback admitted beyond max tasks")
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewSubmissionQueues(10)
	first := &stubTask{id: 1}
	second := &stubTask{id: 2}
	q.PushRunnable(first)
	q.PushRunnable(second)
	if got := q.freshObj.Remove().(api.Runnable); got != api.Runnable(first) {
		t.Error("queue is not FIFO")
	}
	if got := q.freshObj.Remove().(api.Runnable); got != api.Runnable(second) {
		t.Error("queue is not FIFO")
	}
}

func TestQueueRefusesHandleResidentInMissed(t *testing.T) {
	q := NewSubmissionQueues(10)
	task := &stubTask{id: 1}
	q.missedObj.Add(api.Runnable(task))
	if q.PushRunnable(task) {
		t.Error("handle in missed queue must not enter fresh queue")
	}
	// A different handle is unaffected.
	if !q.PushRunnable(&stubTask{id: 1}) {
		t.Error("distinct handle refused")
	}
}

func TestQueueEmptyAndClear(t *testing.T) {
	q := NewSubmissionQueues(10)
	if !q.Empty() {
		t.Fatal("new queues should be empty")
	}
	q.PushRunnable(&stubTask{id: 1})
	q.PushCallback(api.Callback{Fn: func(any, bool) {}})
	q.missedObj.Add(api.Runnable(&stubTask{id: 2}))
	q.missedCB.Add(api.Callback{Fn: func(any, bool) {}})
	if q.Empty() {
		t.Fatal("queues with items reported empty")
	}
	q.Clear()
	if !q.Empty() {
		t.Error("clear left items behind")
	}
}

func TestQueueDefaultCapacity(t *testing.T) {
	q := NewSubmissionQueues(0)
	if q.MaxTasks() != DefaultMaxTasks {
		t.Errorf("default max tasks = %d, want %d", q.MaxTasks(), DefaultMaxTasks)
	}
}

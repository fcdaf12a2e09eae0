// File: threadpool/stats.go
// Author: momentics <momentics@gmail.com>
//
// Point-in-time pool statistics for monitoring surfaces.

package threadpool

import "github.com/momentics/hioload-threads/api"

// Stats is a snapshot of worker states and queue depths.
type Stats struct {
	MaxThreads int
	Available  int
	Executing  int
	Purging    int
	Pausing    int

	FreshTasks      int
	MissedTasks     int
	FreshCallbacks  int
	MissedCallbacks int

	SubmissionLocked bool
}

// Stats captures a consistent snapshot under the pool mutex.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	st := Stats{
		MaxThreads:       p.cfg.MaxThreads,
		FreshTasks:       p.queues.FreshRunnables(),
		MissedTasks:      p.queues.MissedRunnables(),
		FreshCallbacks:   p.queues.FreshCallbacks(),
		MissedCallbacks:  p.queues.MissedCallbacks(),
		SubmissionLocked: p.submissionLocked,
	}
	for _, w := range p.workers {
		switch w.Status() {
		case api.StatusNotExecuting:
			st.Available++
		case api.StatusExecuting:
			st.Executing++
		case api.StatusPurging:
			st.Available++
			st.Purging++
		case api.StatusPausing:
			st.Pausing++
		}
	}
	return st
}

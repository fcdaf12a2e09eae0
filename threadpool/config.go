// File: threadpool/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package threadpool

import (
	"time"

	"github.com/momentics/hioload-threads/api"
)

// Config holds parameters immutable per pool. All fields influence pool
// construction and cannot be changed after New.
type Config struct {
	// MaxThreads is the fixed worker count.
	MaxThreads int `yaml:"max_threads"`
	// MaxTasks bounds the queued tasks of each kind (object or callback),
	// counting the fresh and missed queues together.
	MaxTasks int `yaml:"max_tasks"`
	// DispatcherPeriod is the sweep interval of the dispatch loop.
	DispatcherPeriod time.Duration `yaml:"dispatcher_period"`
	// Platform is the advisory platform id carried for diagnostics; the
	// effective binding is selected at build time.
	Platform api.PlatformID `yaml:"platform"`
}

// DefaultConfig returns the stock configuration: 10 workers, 25 queued
// tasks per task kind, 10 ms dispatch period.
func DefaultConfig() *Config {
	return &Config{
		MaxThreads:       10,
		MaxTasks:         25,
		DispatcherPeriod: 10 * time.Millisecond,
		Platform:         api.PlatformNone,
	}
}

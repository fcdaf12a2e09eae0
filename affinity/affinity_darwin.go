//go:build darwin
// +build darwin

// File: affinity/affinity_darwin.go
// Author: momentics <momentics@gmail.com>
//
// Darwin implementation. macOS exposes no public thread-affinity control,
// so mask and ideal-core application are no-ops; the priority classes map
// onto nice values with the contract's monotonic ordering (the QoS ladder
// needs a pthread linked via cgo, which this module avoids). The nice value
// is set with PRIO_PROCESS and who 0, so it applies to the whole process,
// not only to the calling thread.

package affinity

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-threads/api"
)

var niceByPriority = map[api.Priority]int{
	api.PriorityLow:          10,
	api.PriorityNormal:       0,
	api.PriorityHigh:         -5,
	api.PriorityCritical:     -10,
	api.PriorityTimeCritical: -20,
}

func setAffinityMaskPlatform(mask uint64) error { return nil }

func setIdealCorePlatform(core int) error { return nil }

func setPriorityPlatform(prio api.Priority) error {
	nice, ok := niceByPriority[prio]
	if !ok {
		return api.ErrInvalidArgument
	}
	return unix.Setpriority(unix.PRIO_PROCESS, 0, nice)
}

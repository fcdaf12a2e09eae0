//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific platform probes.

package control

import "github.com/momentics/hioload-threads/sysinfo"

// RegisterPlatformProbes sets Linux-specific debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	desc := sysinfo.New()
	dp.RegisterProbe("platform.cpus", func() any {
		return desc.NumProcessors()
	})
	dp.RegisterProbe("platform.memory_load", func() any {
		return desc.MemoryLoad()
	})
}

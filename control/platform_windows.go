//go:build windows
// +build windows

// control/platform_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific platform probes.

package control

import "github.com/momentics/hioload-threads/sysinfo"

// RegisterPlatformProbes sets Windows-specific debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	desc := sysinfo.New()
	dp.RegisterProbe("platform.cpus", func() any {
		return desc.NumProcessors()
	})
	dp.RegisterProbe("platform.memory_load", func() any {
		return desc.MemoryLoad()
	})
}

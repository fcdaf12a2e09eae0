//go:build !linux && !windows
// +build !linux,!windows

// control/platform_other.go
// Author: momentics <momentics@gmail.com>
//
// Platform probes for systems without a dedicated probe file.

package control

import "github.com/momentics/hioload-threads/sysinfo"

// RegisterPlatformProbes sets generic platform probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	desc := sysinfo.New()
	dp.RegisterProbe("platform.cpus", func() any {
		return desc.NumProcessors()
	})
}

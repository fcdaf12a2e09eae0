// File: sysinfo/sysinfo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// System descriptor: logical processor count and physical memory state,
// captured once at construction. The pool core depends only on
// NumProcessors; the memory probes serve diagnostics and admission checks.

package sysinfo

import "runtime"

const bytesPerMB = 1024 * 1024

// Description is a snapshot of host capacity taken at construction.
type Description struct {
	numProcessors    int
	bytesPhysicalRAM uint64
	memoryLoad       uint32
}

// New probes the host and returns its description.
func New() *Description {
	d := &Description{numProcessors: runtime.NumCPU()}
	if d.numProcessors < 1 {
		d.numProcessors = 1
	}
	d.bytesPhysicalRAM, d.memoryLoad = probeMemoryPlatform()
	return d
}

// NumProcessors returns the logical CPU count, at least 1.
func (d *Description) NumProcessors() int { return d.numProcessors }

// BytesPhysicalMemory returns total physical RAM in bytes, or 0 when the
// platform probe is unavailable.
func (d *Description) BytesPhysicalMemory() uint64 { return d.bytesPhysicalRAM }

// MemoryLoad returns the in-use physical memory percentage at probe time.
func (d *Description) MemoryLoad() uint32 { return d.memoryLoad }

// MemoryExceeds reports whether physical RAM is larger than the given
// megabyte threshold.
func (d *Description) MemoryExceeds(megabytes uint32) bool {
	return d.bytesPhysicalRAM/bytesPerMB > uint64(megabytes)
}

// HyperThreadAvailable reports whether any physical core exposes more
// than one logical processor. False when the platform offers no probe.
func (d *Description) HyperThreadAvailable() bool {
	return probeHyperThreadPlatform()
}

// File: api/execprops.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ExecutionProps is the per-task scheduling attribute block read by workers
// immediately before dispatching a task body.

package api

import "runtime"

// logicalCPUCount reports the machine's logical CPU count for mask
// derivation. The affinity package exposes the platform-aware variant.
func logicalCPUCount() int { return runtime.NumCPU() }

// ExecutionProps carries the scheduling attributes of a task: priority
// class, affinity mode, ideal core and the derived affinity mask. It is a
// plain value, freely copyable. The zero value means soft affinity, low
// priority, core 0, empty mask.
type ExecutionProps struct {
	affinityMode AffinityMode
	priority     Priority
	idealCore    int
	affinityMask uint64
}

// NewExecutionProps returns properties with the given mode, priority and
// ideal core, and the affinity mask derived from the core.
func NewExecutionProps(mode AffinityMode, prio Priority, core int) ExecutionProps {
	p := ExecutionProps{}
	p.Fill(mode, prio, core)
	return p
}

// AffinityMode returns the configured affinity mode.
func (p *ExecutionProps) AffinityMode() AffinityMode { return p.affinityMode }

// Priority returns the configured priority class.
func (p *ExecutionProps) Priority() Priority { return p.priority }

// IdealCore returns the preferred logical core index.
func (p *ExecutionProps) IdealCore() int { return p.idealCore }

// AffinityMask returns the derived processor mask. Bit i is set iff core i
// is permitted. A zero mask under hard affinity is applied as a no-op.
func (p *ExecutionProps) AffinityMask() uint64 { return p.affinityMask }

// SetAffinityMode sets the affinity mode.
func (p *ExecutionProps) SetAffinityMode(m AffinityMode) { p.affinityMode = m }

// SetPriority sets the priority class.
func (p *ExecutionProps) SetPriority(prio Priority) { p.priority = prio }

// SetIdealCore sets the preferred core. The mask is not recomputed until
// BuildAffinityMask is called.
func (p *ExecutionProps) SetIdealCore(core int) { p.idealCore = core }

// BuildAffinityMask derives the mask from the ideal core: 1<<core when the
// core index is valid for this machine, zero otherwise.
func (p *ExecutionProps) BuildAffinityMask(logicalCPUs int) {
	if p.idealCore >= 0 && p.idealCore < logicalCPUs {
		p.affinityMask = 1 << uint(p.idealCore)
	} else {
		p.affinityMask = 0
	}
}

// Fill replaces mode, priority and core in one call and rebuilds the mask
// against the current machine topology.
func (p *ExecutionProps) Fill(mode AffinityMode, prio Priority, core int) {
	p.affinityMode = mode
	p.priority = prio
	p.idealCore = core
	p.BuildAffinityMask(logicalCPUCount())
}

//go:build !linux && !windows && !darwin
// +build !linux,!windows,!darwin

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for unsupported platforms. Attribute application is
// best-effort by contract, so the stubs succeed silently.

package affinity

import "github.com/momentics/hioload-threads/api"

func setAffinityMaskPlatform(mask uint64) error { return nil }

func setIdealCorePlatform(core int) error { return nil }

func setPriorityPlatform(prio api.Priority) error { return nil }

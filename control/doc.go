// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime control plane for the thread-pool runtime: dynamic configuration
// with hot-reload listeners and YAML persistence, Prometheus metrics over
// pool statistics, and debug probe registration.
//
// This package is cross-platform and build-tag-partitioned as needed.
package control

// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package concurrency implements the engine underneath the public pool:
// long-lived workers locked to OS threads, the bounded submission queues,
// and the dispatcher that drains queues onto idle workers. The threadpool
// package owns these pieces and serializes control-plane access.
package concurrency

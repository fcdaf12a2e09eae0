// File: api/task.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Task shapes accepted by the pool: callback tasks (function plus opaque
// argument) and object tasks (client-owned entities with their own execute
// method and mutable execution properties).

package api

// CallbackFunc is the signature of a callback task body. The ownsArg flag
// tells the callback it may release arg on return; the pool never frees the
// argument itself.
type CallbackFunc func(arg any, ownsArg bool)

// Callback is a callback task value. Queues copy it; the pool takes no
// ownership of Arg.
type Callback struct {
	Fn      CallbackFunc
	Arg     any
	OwnsArg bool
}

// Runnable is the object-task contract. A Runnable is client-owned: the
// pool keeps only the handle, compares identities by handle, and requires
// the object to outlive its residency in the pool (from a successful submit
// until Execute returns and the worker re-parks).
type Runnable interface {
	// Execute runs the task body. Called at most once per submission.
	Execute()

	// ObjectID returns the client-assigned 32-bit identifier. The pool does
	// not enforce uniqueness; it is carried for diagnostics.
	ObjectID() uint32

	// ExecutionProps returns the task's mutable scheduling attributes. The
	// worker reads them immediately before invoking Execute.
	ExecutionProps() *ExecutionProps
}

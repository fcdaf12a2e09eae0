// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package api declares the public contracts of the hioload-threads runtime:
// task shapes (callback and object tasks), execution properties (priority,
// CPU affinity), worker status enumerations, and the pool surface. The
// package contains declarations only; implementations live in threadpool,
// affinity, and internal/concurrency.
package api

package newton

import "sync/atomic"

// Counter accumulates iteration counts across calls.
// The zero value is ready to use.
type Counter struct{ n atomic.Uint64 }

// Iterations counts every improvement step taken by ApproximateRootIter and
// ApproximateCubeRoot over the life of the process. This package never
// resets it; callers wanting per-run counts call Reset themselves.
var Iterations Counter

// Add adds n to the count.
func (c *Counter) Add(n uint64) { c.n.Add(n) }

// Load returns the current count.
func (c *Counter) Load() uint64 { return c.n.Load() }

// Reset zeroes the count, returning its prior value.
func (c *Counter) Reset() uint64 { return c.n.Swap(0) }

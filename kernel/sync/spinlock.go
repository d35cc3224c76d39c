// Package sync provides the spinlock used to guard the process-wide
// singletons (interrupt table, output sink) of the loader and the kernel.
package sync

import "sync/atomic"

// spinAttempts is the number of busy-wait iterations performed by
// archAcquireSpinlock before control returns to Acquire.
const spinAttempts = 1 << 10

var (
	// yieldFn is invoked by Acquire each time archAcquireSpinlock gives up.
	// There is no scheduler so it stays nil outside of tests.
	yieldFn func()
)

// Spinlock implements a lock where each caller trying to acquire it busy-waits
// till the lock becomes available.
type Spinlock struct {
	state uint32
}

// Acquire blocks until the lock can be acquired. Any attempt to re-acquire a
// lock already held by the current execution context (e.g. from an exception
// handler that interrupted the lock holder) will cause a deadlock; such
// contexts must use TryToAcquire instead.
func (l *Spinlock) Acquire() {
	for !archAcquireSpinlock(&l.state, spinAttempts) {
		if yieldFn != nil {
			yieldFn()
		}
	}
}

// TryToAcquire attempts to acquire the lock and returns true if the lock could
// be acquired or false otherwise.
func (l *Spinlock) TryToAcquire() bool {
	return atomic.SwapUint32(&l.state, 1) == 0
}

// Release relinquishes a held lock allowing other callers to acquire it.
// Calling Release while the lock is free has no effect.
func (l *Spinlock) Release() {
	atomic.StoreUint32(&l.state, 0)
}

// archAcquireSpinlock is an arch-specific implementation for acquiring the
// lock. It spins for at most attempts iterations and reports whether the lock
// was acquired. attempts must be greater than zero.
func archAcquireSpinlock(state *uint32, attempts uint32) bool

// Package goruntime prepares the minimum of Go runtime state that compiled
// kernel code depends on before any runtime initialization has taken place.
package goruntime

import "unsafe"

// bootStackGuard is the number of bytes reserved at the bottom of the boot
// stack. Function prologues compare SP against stackLo+bootStackGuard.
const bootStackGuard = 4096

// bootGoroutine mirrors the leading fields of runtime.g: the stack bounds
// and the two guards checked by function prologues. Nothing else in g is
// read by code that runs before the runtime is initialized.
type bootGoroutine struct {
	stackLo     uintptr
	stackHi     uintptr
	stackGuard0 uintptr
	stackGuard1 uintptr

	// room for the remaining runtime.g fields that may be zero-checked
	_ [64]uintptr
}

var (
	bootG bootGoroutine

	// tlsBlock backs the FS segment. The linux/amd64 TLS model stores the
	// current g at -8(FS) so the FS base points at tlsBlock[1].
	tlsBlock [2]uintptr
)

// SetupBootG populates bootG with the supplied stack bounds, stores its
// address in the TLS slot and points the FS base at the TLS block. It must
// be called from assembly on the new stack before any Go function with a
// stack check prologue.
func SetupBootG(stackLo, stackHi uintptr)

// BootStackBounds returns the stack bounds of the g installed in the TLS
// block, or zero values if SetupBootG has not run.
func BootStackBounds() (lo, hi uintptr) {
	g := (*bootGoroutine)(unsafe.Pointer(tlsBlock[0]))
	if g == nil {
		return 0, 0
	}
	return g.stackLo, g.stackHi
}

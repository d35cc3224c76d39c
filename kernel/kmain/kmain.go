// Package kmain contains the kernel entry point. The rt0 assembly stub moves
// the handoff structure off the loader stack, installs the boot goroutine
// and calls Kmain.
package kmain

import (
	"gopherboot/handoff"
	"gopherboot/kernel"
	"gopherboot/kernel/cpu"
	"gopherboot/kernel/gate"
	"gopherboot/kernel/goruntime"
	"gopherboot/kernel/hal"
	"gopherboot/kernel/kfmt"
)

// bootStackSize is the size of the stack that rt0 switches to.
const bootStackSize = 64 << 10

var (
	// bootInfo receives the handoff structure copied by rt0.
	bootInfo handoff.FramebufferInfo

	// bootStack is the kernel stack installed by rt0.
	bootStack [bootStackSize]byte

	kmainLog = kfmt.PrefixWriter{Prefix: []byte("[kmain] ")}

	errKmainReturned = &kernel.Error{Module: "kmain", Message: "Kmain returned"}

	// The following functions are mocked by tests.
	initTerminalFn   = hal.InitTerminal
	initGateFn       = gate.Init
	applyRedirectsFn = goruntime.ApplyRedirects
	bootStackFn      = goruntime.BootStackBounds
	panicFn          = kfmt.Panic
	haltFn           = cpu.Halt
)

// start is called by rt0 once the boot goroutine is in place. If Kmain ever
// returns the CPU is halted through Panic.
func start() {
	Kmain(&bootInfo)
	panicFn(errKmainReturned)
}

// Kmain is the only Go symbol that is visible (exported) from the rt0
// initialization code. It installs the interrupt table, attaches the
// framebuffer described by info to the kernel console, reports the boot
// environment and then idles the CPU.
//
// Kmain is not expected to return.
//
//go:noinline
func Kmain(info *handoff.FramebufferInfo) {
	// Faults raised while the terminal is attached are reported to the
	// kfmt ring buffer, which the terminal replays once it is linked.
	initGateFn()

	// Fatal errors are still captured by the kfmt ring buffer if the
	// terminal could not be attached.
	if err := initTerminalFn(info); err != nil {
		panicFn(err)
		return
	}

	kfmt.Printf("Hello, World!\n")

	vendor := cpu.Vendor()
	kfmt.Fprintf(&kmainLog, "cpu vendor: %s\n", vendor[:])
	kfmt.Fprintf(&kmainLog, "framebuffer: %dx%d, stride %d, %d bytes at 0x%x\n",
		info.Width, info.Height, info.Stride, info.Size, info.Pointer,
	)

	stackLo, stackHi := bootStackFn()
	kfmt.Fprintf(&kmainLog, "boot stack: [0x%x - 0x%x]\n", stackLo, stackHi)

	if err := applyRedirectsFn(); err != nil {
		panicFn(err)
		return
	}

	kfmt.Fprintf(&kmainLog, "interrupt table installed; idling\n")

	for {
		haltFn()
	}
}

// rt0 is the kernel entry point selected with the linker -E flag. It is
// implemented in assembly and is never called from Go.
func rt0()

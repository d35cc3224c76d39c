package kfmt

import (
	"gopherboot/kernel"
	"gopherboot/kernel/cpu"
)

var (
	// cpuHaltFn is mocked by tests and is automatically inlined by the compiler.
	cpuHaltFn = cpu.Halt

	errRuntimePanic = &kernel.Error{Module: "rt", Message: "unknown cause"}
)

// Panic outputs the supplied error (if not nil) to the output sink and halts
// the CPU. Calls to Panic never return. Panic also works as a redirection
// target for calls to panic() (resolved via runtime.gopanic).
//
// Panic does not wait for the output lock: if the panicking code path already
// holds it, the lock owner can never resume so Panic writes regardless.
//
//go:redirect-from runtime.gopanic
func Panic(e interface{}) {
	var err *kernel.Error

	switch t := e.(type) {
	case *kernel.Error:
		err = t
	case string:
		panicString(t)
		return
	case error:
		errRuntimePanic.Message = t.Error()
		err = errRuntimePanic
	}

	locked := sinkLock.TryToAcquire()
	fprintf(outputSink, "\n-----------------------------------\n")
	if err != nil {
		fprintf(outputSink, "[%s] unrecoverable error: %s\n", err.Module, err.Message)
	}
	fprintf(outputSink, "*** kernel panic: system halted ***")
	fprintf(outputSink, "\n-----------------------------------\n")
	if locked {
		sinkLock.Release()
	}

	cpuHaltFn()
}

// panicString serves as a redirect target for runtime.throw
//
//go:redirect-from runtime.throw
func panicString(msg string) {
	errRuntimePanic.Message = msg
	Panic(errRuntimePanic)
}

// Package gate installs the interrupt descriptor table and routes CPU
// exceptions from the assembly trampolines in gate_amd64.s to Go handlers.
package gate

import (
	"gopherboot/kernel"
	"gopherboot/kernel/kfmt"
	"unsafe"
)

// Registers contains a snapshot of the general purpose register values at
// the time an exception occurred.
type Registers struct {
	RAX uint64
	RBX uint64
	RCX uint64
	RDX uint64
	RSI uint64
	RDI uint64
	RBP uint64
	R8  uint64
	R9  uint64
	R10 uint64
	R11 uint64
	R12 uint64
	R13 uint64
	R14 uint64
	R15 uint64
}

// printfFn is the signature shared by the fault-safe kfmt output functions.
type printfFn func(format string, args ...interface{}) bool

// Print outputs the register contents using the fault-safe kfmt path.
func (r *Registers) Print() {
	r.print(kfmt.TryPrintf)
}

func (r *Registers) print(printf printfFn) {
	printf("RAX = %16x RBX = %16x\n", r.RAX, r.RBX)
	printf("RCX = %16x RDX = %16x\n", r.RCX, r.RDX)
	printf("RSI = %16x RDI = %16x\n", r.RSI, r.RDI)
	printf("RBP = %16x\n", r.RBP)
	printf("R8  = %16x R9  = %16x\n", r.R8, r.R9)
	printf("R10 = %16x R11 = %16x\n", r.R10, r.R11)
	printf("R12 = %16x R13 = %16x\n", r.R12, r.R13)
	printf("R14 = %16x R15 = %16x\n", r.R14, r.R15)
}

// Frame is the return frame pushed by the CPU when it delivers an exception.
// IRETQ consumes it when the handler returns.
type Frame struct {
	RIP    uint64
	CS     uint64
	RFlags uint64
	RSP    uint64
	SS     uint64
}

// Print outputs the frame contents using the fault-safe kfmt path.
func (f *Frame) Print() {
	f.print(kfmt.TryPrintf)
}

func (f *Frame) print(printf printfFn) {
	printf("RIP = %16x CS  = %16x\n", f.RIP, f.CS)
	printf("RSP = %16x SS  = %16x\n", f.RSP, f.SS)
	printf("RFL = %16x\n", f.RFlags)
}

// InterruptNumber describes an x86 interrupt/exception/trap slot.
type InterruptNumber uint8

const (
	// DivideError occurs when dividing any number by 0 using the DIV or
	// IDIV instruction or when the quotient does not fit the destination.
	DivideError = InterruptNumber(0)

	// InvalidOpcode occurs when the CPU attempts to execute an invalid or
	// undefined instruction opcode.
	InvalidOpcode = InterruptNumber(6)

	// DoubleFault occurs when an exception is raised while the CPU is
	// trying to deliver a prior exception. The CPU pushes an error code
	// which is always zero.
	DoubleFault = InterruptNumber(8)

	// PageFault occurs when a page table entry is not present or when a
	// privilege and/or RW protection check fails. The CPU pushes a
	// PageFaultErrorCode and stores the faulting address in CR2.
	PageFault = InterruptNumber(14)
)

// hasErrorCode returns true if the CPU pushes an error code word before
// invoking the handler for vector.
func hasErrorCode(vector InterruptNumber) bool {
	return vector == DoubleFault || vector == PageFault
}

// ExceptionHandler handles an exception that does not push an error code.
type ExceptionHandler func(*Frame, *Registers)

// ExceptionHandlerWithCode handles an exception that pushes an error code.
type ExceptionHandlerWithCode func(uint64, *Frame, *Registers)

type exceptionEntry struct {
	handler         ExceptionHandler
	handlerWithCode ExceptionHandlerWithCode
}

// exceptionTable maps the installed vectors to their handlers. It is
// statically initialized and swapped by tests.
var exceptionTable = [PageFault + 1]exceptionEntry{
	DivideError:   {handler: handleDivideError},
	InvalidOpcode: {handler: handleInvalidOpcode},
	DoubleFault:   {handlerWithCode: handleDoubleFault},
	PageFault:     {handlerWithCode: handlePageFault},
}

// savedState mirrors the area that the trampolines build on the stack: the
// XMM registers followed by the general purpose registers in Registers
// order. The fault code (if any) and the Frame follow immediately above it.
type savedState struct {
	XMM  [16][2]uint64
	Regs Registers
}

const savedStateSize = unsafe.Sizeof(savedState{})

var _ [376]byte = [savedStateSize]byte{}

var (
	errUnhandledException = &kernel.Error{Module: "gate", Message: "exception without a registered handler"}

	// panicFn is mocked by tests.
	panicFn = kfmt.Panic
)

// dispatchException is invoked by the trampolines with the address of the
// saved state and the vector number. It locates the fault code and the
// return frame and calls the registered handler. Handlers may modify the
// frame and registers; the trampoline restores whatever they contain.
func dispatchException(state uintptr, vector uint64) {
	var (
		regs = (*Registers)(unsafe.Pointer(state + unsafe.Offsetof(savedState{}.Regs)))
		top  = state + savedStateSize
		code uint64
	)

	if vector >= uint64(len(exceptionTable)) {
		panicFn(errUnhandledException)
		return
	}

	if hasErrorCode(InterruptNumber(vector)) {
		code = *(*uint64)(unsafe.Pointer(top))
		top += 8
	}
	frame := (*Frame)(unsafe.Pointer(top))

	switch entry := &exceptionTable[vector]; {
	case entry.handlerWithCode != nil:
		entry.handlerWithCode(code, frame, regs)
	case entry.handler != nil:
		entry.handler(frame, regs)
	default:
		panicFn(errUnhandledException)
	}
}

// trampolineAddrs returns the entry points of the trampolines for the
// DivideError, InvalidOpcode, DoubleFault and PageFault vectors.
func trampolineAddrs() (divideError, invalidOpcode, doubleFault, pageFault uintptr)

// Exception entry points implemented in gate_amd64.s. They are never called
// from Go; their addresses are installed in the interrupt descriptor table.
func divideErrorTrampoline()
func invalidOpcodeTrampoline()
func doubleFaultTrampoline()
func pageFaultTrampoline()

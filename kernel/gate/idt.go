package gate

import (
	"encoding/binary"
	"gopherboot/kernel/cpu"
	"gopherboot/kernel/sync"
	"unsafe"
)

const (
	idtEntries = 256

	// gateTypeInterrupt selects a 64-bit interrupt gate; the CPU clears
	// IF while the handler runs.
	gateTypeInterrupt = 0xE

	gatePresent = 1 << 7
)

// gateDescriptor is the 16-byte long mode IDT entry.
type gateDescriptor struct {
	offsetLow  uint16
	selector   uint16
	ist        uint8
	typeAttr   uint8
	offsetMid  uint16
	offsetHigh uint32
	reserved   uint32
}

var _ [16]byte = [unsafe.Sizeof(gateDescriptor{})]byte{}

// set points the descriptor at handler using an interrupt gate with DPL 0.
func (d *gateDescriptor) set(handler uintptr, selector uint16) {
	d.offsetLow = uint16(handler)
	d.selector = selector
	d.ist = 0
	d.typeAttr = gatePresent | gateTypeInterrupt
	d.offsetMid = uint16(handler >> 16)
	d.offsetHigh = uint32(handler >> 32)
	d.reserved = 0
}

// handler reassembles the handler address encoded in the descriptor.
func (d *gateDescriptor) handler() uintptr {
	return uintptr(d.offsetLow) | uintptr(d.offsetMid)<<16 | uintptr(d.offsetHigh)<<32
}

func (d *gateDescriptor) present() bool {
	return d.typeAttr&gatePresent != 0
}

// interruptTable holds the IDT and the 10-byte pseudo-descriptor passed to
// LIDT. It is built on first use and never modified after installation.
type interruptTable struct {
	lock      sync.Spinlock
	built     bool
	installed bool

	entries [idtEntries]gateDescriptor
	pointer [10]byte
}

var (
	table interruptTable

	// The following functions are mocked by tests.
	lidtFn            = cpu.LoadIDT
	readCSFn          = cpu.ReadCS
	trampolineAddrsFn = trampolineAddrs
)

// Init builds the interrupt table (if not already built) and loads it into
// the CPU. Only the first call executes LIDT; subsequent calls are no-ops.
func Init() {
	table.lock.Acquire()
	table.buildLocked()
	if !table.installed {
		binary.LittleEndian.PutUint16(table.pointer[0:], uint16(unsafe.Sizeof(table.entries)-1))
		binary.LittleEndian.PutUint64(table.pointer[2:], uint64(uintptr(unsafe.Pointer(&table.entries[0]))))
		lidtFn(uintptr(unsafe.Pointer(&table.pointer[0])))
		table.installed = true
	}
	table.lock.Release()
}

// entry returns a copy of the descriptor for vector, building the table
// first if needed.
func (t *interruptTable) entry(vector InterruptNumber) gateDescriptor {
	t.lock.Acquire()
	t.buildLocked()
	d := t.entries[vector]
	t.lock.Release()
	return d
}

// buildLocked populates the descriptors for the handled vectors. Callers
// must hold t.lock.
func (t *interruptTable) buildLocked() {
	if t.built {
		return
	}

	selector := readCSFn()
	divideError, invalidOpcode, doubleFault, pageFault := trampolineAddrsFn()
	t.entries[DivideError].set(divideError, selector)
	t.entries[InvalidOpcode].set(invalidOpcode, selector)
	t.entries[DoubleFault].set(doubleFault, selector)
	t.entries[PageFault].set(pageFault, selector)
	t.built = true
}

package gate

import (
	"gopherboot/kernel/cpu"
	"gopherboot/kernel/kfmt"
)

var (
	// The following functions are mocked by tests and are automatically
	// inlined by the compiler.
	readCR2Fn = cpu.ReadCR2
	haltFn    = cpu.Halt
)

func handleDivideError(frame *Frame, regs *Registers) {
	kfmt.TryPrintf("\n[gate] divide error\n")
	frame.Print()
	regs.Print()
}

func handleInvalidOpcode(frame *Frame, regs *Registers) {
	kfmt.TryPrintf("\n[gate] invalid opcode\n")
	frame.Print()
	regs.Print()
}

// handleDoubleFault reports the fault and halts the CPU; a double fault
// leaves the interrupted state unrecoverable. The report is written even if
// the interrupted code holds the output lock.
func handleDoubleFault(code uint64, frame *Frame, regs *Registers) {
	kfmt.FatalPrintf("\n[gate] double fault (code: %x)\n", code)
	frame.print(kfmt.FatalPrintf)
	regs.print(kfmt.FatalPrintf)

	for {
		haltFn()
	}
}

func handlePageFault(code uint64, frame *Frame, regs *Registers) {
	var (
		faultAddress = readCR2Fn()
		errCode      = PageFaultErrorCode(code)
	)

	kfmt.TryPrintf("\n[gate] page fault at address 0x%16x (code: %x)\n", faultAddress, code)
	kfmt.TryPrintf("[gate] flags:")
	if !errCode.Has(ProtectionViolation) {
		kfmt.TryPrintf(" not-present")
	}
	for i := 0; i < len(pageFaultFlags); i++ {
		if errCode.Has(pageFaultFlags[i].flag) {
			kfmt.TryPrintf(" %s", pageFaultFlags[i].name)
		}
	}
	kfmt.TryPrintf("\n")
	frame.Print()
	regs.Print()
}

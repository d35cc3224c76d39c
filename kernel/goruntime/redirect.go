package goruntime

import "gopherboot/kernel"

const (
	// redirectTableMagic marks the table header so that tools/redirects
	// can verify it is patching the right symbol.
	redirectTableMagic = 0x7463657269646572 // "redirect"

	// redirectTableSize is the number of (src, dst) slots following the
	// header.
	redirectTableSize = 16

	// jumpStubSize is the size of the MOVQ $dst, AX; JMP AX sequence.
	jumpStubSize = 12
)

// redirectTable is populated after linking by tools/redirects with the
// addresses of functions annotated with go:redirect-from. Slot 0 is the
// header {magic, capacity}; each following slot holds {src, dst}; the first
// slot with a zero src terminates the list. The header keeps the table in
// the initialized data section so it has a file offset to patch.
var redirectTable = [redirectTableSize + 1][2]uintptr{
	{redirectTableMagic, redirectTableSize},
}

var errBadRedirectTable = &kernel.Error{Module: "goruntime", Message: "redirect table header is corrupted"}

// ApplyRedirects overwrites the entry of every source function in the
// redirect table with an absolute jump to its destination, routing calls
// such as runtime.gopanic to kernel implementations.
func ApplyRedirects() *kernel.Error {
	if redirectTable[0][0] != redirectTableMagic || redirectTable[0][1] != redirectTableSize {
		return errBadRedirectTable
	}

	for i := 1; i < len(redirectTable); i++ {
		src, dst := redirectTable[i][0], redirectTable[i][1]
		if src == 0 {
			break
		}

		writeJump(kernel.Bytes(src, jumpStubSize), dst)
	}

	return nil
}

// writeJump encodes MOVQ $dst, AX; JMP AX into stub.
func writeJump(stub []byte, dst uintptr) {
	stub[0], stub[1] = 0x48, 0xb8
	for i := 0; i < 8; i++ {
		stub[2+i] = byte(dst >> (8 * uint(i)))
	}
	stub[10], stub[11] = 0xff, 0xe0
}

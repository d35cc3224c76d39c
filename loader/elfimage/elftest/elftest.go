// Package elftest builds synthetic ELF64 executables for tests.
package elftest

import "encoding/binary"

// ProgHeaderSize is the size of an ELF64 program header.
const ProgHeaderSize = 56

// Prog describes a program header to emit.
type Prog struct {
	Type     uint32
	Offset   uint64
	Addr     uint64
	FileSize uint64
	MemSize  uint64
}

// Build returns a size-byte x86-64 executable image whose program header
// table is placed at tableOffset. Bytes not covered by the headers are
// filled with a position-dependent pattern so copies can be verified.
func Build(size int, entry, tableOffset uint64, progs []Prog) []byte {
	img := make([]byte, size)
	for i := range img {
		img[i] = Pattern(i)
	}

	copy(img, "\x7fELF")
	img[4] = 2 // ELFCLASS64
	img[5] = 1 // ELFDATA2LSB
	img[6] = 1 // EV_CURRENT
	for i := 7; i < 16; i++ {
		img[i] = 0
	}
	le := binary.LittleEndian
	le.PutUint16(img[0x10:], 2)    // ET_EXEC
	le.PutUint16(img[0x12:], 0x3e) // EM_X86_64
	le.PutUint32(img[0x14:], 1)
	le.PutUint64(img[0x18:], entry)
	le.PutUint64(img[0x20:], tableOffset)
	le.PutUint64(img[0x28:], 0) // no section headers
	le.PutUint32(img[0x30:], 0)
	le.PutUint16(img[0x34:], 64)
	le.PutUint16(img[0x36:], ProgHeaderSize)
	le.PutUint16(img[0x38:], uint16(len(progs)))
	le.PutUint16(img[0x3a:], 64)
	le.PutUint16(img[0x3c:], 0)
	le.PutUint16(img[0x3e:], 0)

	for i, p := range progs {
		ph := img[tableOffset+uint64(i)*ProgHeaderSize:]
		le.PutUint32(ph[0x00:], p.Type)
		le.PutUint32(ph[0x04:], 5) // PF_R|PF_X
		le.PutUint64(ph[0x08:], p.Offset)
		le.PutUint64(ph[0x10:], p.Addr)
		le.PutUint64(ph[0x18:], p.Addr)
		le.PutUint64(ph[0x20:], p.FileSize)
		le.PutUint64(ph[0x28:], p.MemSize)
		le.PutUint64(ph[0x30:], 0x1000)
	}

	return img
}

// Pattern returns the filler byte used at file offset i.
func Pattern(i int) byte {
	return byte(i*7 + 3)
}

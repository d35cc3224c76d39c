// Package elfimage decodes the parts of a 64-bit little-endian ELF executable
// needed to place it in memory: the entry point and the program header
// table. All reads are bounds-checked against the image buffer.
package elfimage

import (
	"encoding/binary"
	"gopherboot/kernel"
)

const (
	// HeaderSize is the size of the ELF64 file header.
	HeaderSize = 64

	offIdent      = 0x00
	offClass      = 0x04
	offData       = 0x05
	offEntry      = 0x18
	offPhOff      = 0x20
	offPhEntSize  = 0x36
	offPhNum      = 0x38
	classELF64    = 2
	dataLSB       = 1
	minPhEntSize  = 0x30
	elfMagicBytes = "\x7fELF"
)

var (
	errShortHeader       = &kernel.Error{Module: "elfimage", Message: "image is smaller than the ELF header"}
	errBadMagic          = &kernel.Error{Module: "elfimage", Message: "image is missing the ELF signature"}
	errNotELF64          = &kernel.Error{Module: "elfimage", Message: "image is not a 64-bit ELF file"}
	errNotLittleEndian   = &kernel.Error{Module: "elfimage", Message: "image is not little-endian"}
	errEntrySizeTooSmall = &kernel.Error{Module: "elfimage", Message: "program header entries are too small"}
	errTableOutOfBounds  = &kernel.Error{Module: "elfimage", Message: "program header table extends past the image"}
)

// Header contains the ELF header fields used for loading.
type Header struct {
	// Entry is the virtual address of the entry point.
	Entry uint64

	// TableOffset is the file offset of the program header table.
	TableOffset uint64

	// EntrySize is the size of each program header table entry.
	EntrySize uint16

	// EntryCount is the number of program header table entries.
	EntryCount uint16
}

// ReadHeader decodes and validates the ELF header at the start of img. The
// image buffer must contain the whole file. The returned header is
// guaranteed to describe a program header table that lies within img and
// whose entries are large enough to be decoded.
func ReadHeader(img []byte) (Header, *kernel.Error) {
	if len(img) < HeaderSize {
		return Header{}, errShortHeader
	}

	switch {
	case string(img[offIdent:offIdent+4]) != elfMagicBytes:
		return Header{}, errBadMagic
	case img[offClass] != classELF64:
		return Header{}, errNotELF64
	case img[offData] != dataLSB:
		return Header{}, errNotLittleEndian
	}

	hdr := Header{
		Entry:       binary.LittleEndian.Uint64(img[offEntry:]),
		TableOffset: binary.LittleEndian.Uint64(img[offPhOff:]),
		EntrySize:   binary.LittleEndian.Uint16(img[offPhEntSize:]),
		EntryCount:  binary.LittleEndian.Uint16(img[offPhNum:]),
	}

	if hdr.EntryCount != 0 && hdr.EntrySize < minPhEntSize {
		return Header{}, errEntrySizeTooSmall
	}

	// EntrySize*EntryCount fits in 32 bits so only the offset can overflow.
	tableSize := uint64(hdr.EntrySize) * uint64(hdr.EntryCount)
	if imgLen := uint64(len(img)); hdr.TableOffset > imgLen || tableSize > imgLen-hdr.TableOffset {
		return Header{}, errTableOutOfBounds
	}

	return hdr, nil
}

package elfimage

import (
	"encoding/binary"
	"gopherboot/kernel"
)

// SegmentType is the p_type field of a program header.
type SegmentType uint32

const (
	// SegmentTypeNull marks an unused program header entry.
	SegmentTypeNull SegmentType = 0

	// SegmentTypeLoad marks a segment that must be placed in memory.
	SegmentTypeLoad SegmentType = 1
)

const (
	offSegType     = 0x00
	offSegOffset   = 0x08
	offSegAddr     = 0x10
	offSegFileSize = 0x20
	offSegMemSize  = 0x28
)

var (
	errSegmentOutOfBounds = &kernel.Error{Module: "elfimage", Message: "loadable segment extends past the image"}
	errSegmentMemSize     = &kernel.Error{Module: "elfimage", Message: "loadable segment memory size is smaller than its file size"}
)

// Segment describes a program header table entry.
type Segment struct {
	Type SegmentType

	// Offset is the file offset of the segment contents.
	Offset uint64

	// Addr is the physical address the segment is loaded at. The loader
	// uses p_vaddr because the kernel is linked at its load address.
	Addr uint64

	// FileSize is the number of bytes present in the file.
	FileSize uint64

	// MemSize is the number of bytes the segment occupies in memory. The
	// range [FileSize, MemSize) is zero-filled.
	MemSize uint64
}

// readSegment decodes the program header at off. The caller must ensure
// that off+minPhEntSize lies within img.
func readSegment(img []byte, off uint64) Segment {
	entry := img[off : off+minPhEntSize]
	return Segment{
		Type:     SegmentType(binary.LittleEndian.Uint32(entry[offSegType:])),
		Offset:   binary.LittleEndian.Uint64(entry[offSegOffset:]),
		Addr:     binary.LittleEndian.Uint64(entry[offSegAddr:]),
		FileSize: binary.LittleEndian.Uint64(entry[offSegFileSize:]),
		MemSize:  binary.LittleEndian.Uint64(entry[offSegMemSize:]),
	}
}

// VisitSegments invokes visitor for each program header in table order.
// Iteration stops at the first error returned by visitor. The header must
// have been returned by ReadHeader for the same image.
func VisitSegments(img []byte, hdr Header, visitor func(index int, seg Segment) *kernel.Error) *kernel.Error {
	for i := 0; i < int(hdr.EntryCount); i++ {
		seg := readSegment(img, hdr.TableOffset+uint64(i)*uint64(hdr.EntrySize))
		if err := visitor(i, seg); err != nil {
			return err
		}
	}

	return nil
}

// validate checks that a loadable segment can be copied out of img.
func (seg *Segment) validate(img []byte) *kernel.Error {
	if seg.Type != SegmentTypeLoad {
		return nil
	}

	if imgLen := uint64(len(img)); seg.Offset > imgLen || seg.FileSize > imgLen-seg.Offset {
		return errSegmentOutOfBounds
	}

	if seg.MemSize < seg.FileSize {
		return errSegmentMemSize
	}

	return nil
}

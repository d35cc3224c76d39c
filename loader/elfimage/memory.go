package elfimage

import (
	"gopherboot/kernel"
	"gopherboot/kernel/kfmt"
	"unsafe"
)

// Memory is the destination address space for loadable segments.
type Memory interface {
	// Zero clears size bytes starting at addr.
	Zero(addr, size uint64)

	// Copy writes data starting at addr.
	Copy(addr uint64, data []byte)
}

// PhysMemory writes directly to physical addresses. It may only be used
// while the address space is identity mapped (i.e. under UEFI boot
// services) and the target ranges are owned by the caller.
type PhysMemory struct{}

// Zero implements Memory.
func (PhysMemory) Zero(addr, size uint64) {
	kernel.Memset(uintptr(addr), 0, uintptr(size))
}

// Copy implements Memory.
func (PhysMemory) Copy(addr uint64, data []byte) {
	if len(data) == 0 {
		return
	}
	kernel.Memcopy(uintptr(unsafe.Pointer(&data[0])), uintptr(addr), uintptr(len(data)))
}

var loadLog = kfmt.PrefixWriter{Prefix: []byte("[elfimage] ")}

// Load copies the loadable segments of img into mem. For each segment of
// type SegmentTypeLoad the range [Addr, Addr+MemSize) is zero-filled and
// then the first FileSize bytes are copied from img[Offset:]. Other segment
// types are skipped. All loadable segments are validated before the first
// write, so a malformed image leaves mem untouched.
func Load(img []byte, hdr Header, mem Memory) *kernel.Error {
	err := VisitSegments(img, hdr, func(_ int, seg Segment) *kernel.Error {
		return seg.validate(img)
	})
	if err != nil {
		return err
	}

	return VisitSegments(img, hdr, func(index int, seg Segment) *kernel.Error {
		if seg.Type != SegmentTypeLoad {
			kfmt.Fprintf(&loadLog, "segment %d: type %d skipped\n", index, uint32(seg.Type))
			return nil
		}

		kfmt.Fprintf(&loadLog, "segment %d: 0x%x file 0x%x mem 0x%x\n", index, seg.Addr, seg.FileSize, seg.MemSize)
		mem.Zero(seg.Addr, seg.MemSize)
		mem.Copy(seg.Addr, img[seg.Offset:seg.Offset+seg.FileSize])
		return nil
	})
}

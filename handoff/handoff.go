// Package handoff defines the binary structures passed from the loader to the
// kernel entry point.
package handoff

import (
	"encoding/binary"
	"gopherboot/kernel"
	"unsafe"
)

// FramebufferInfo describes the linear framebuffer configured by the loader.
// It is passed by value to the kernel entry point using the System V AMD64
// calling convention, so its layout is fixed: five little-endian 64-bit
// words with no padding.
type FramebufferInfo struct {
	// Pointer is the physical address of the framebuffer.
	Pointer uint64

	// Size is the framebuffer size in bytes.
	Size uint64

	// Width and Height are the visible resolution in pixels.
	Width  uint64
	Height uint64

	// Stride is the number of bytes per scan line. It may exceed
	// Width*4 when the firmware pads scan lines.
	Stride uint64
}

// FramebufferInfoSize is the encoded size of FramebufferInfo.
const FramebufferInfoSize = 40

var _ [FramebufferInfoSize]byte = [unsafe.Sizeof(FramebufferInfo{})]byte{}

// BytesPerPixel is the pixel size for the 32-bit BGR modes accepted by the
// loader.
const BytesPerPixel = 4

var (
	errShortFramebufferInfo = &kernel.Error{Module: "handoff", Message: "framebuffer info requires 40 bytes"}
	errShortBootInfo        = &kernel.Error{Module: "handoff", Message: "boot info requires 40 bytes"}
)

// MarshalBinary encodes the structure into its 40-byte wire form.
func (fb FramebufferInfo) MarshalBinary() ([]byte, error) {
	buf := make([]byte, FramebufferInfoSize)
	fb.encode(buf)
	return buf, nil
}

// Words returns the structure as the five words copied onto the kernel
// entry stack.
func (fb *FramebufferInfo) Words() [5]uint64 {
	return [5]uint64{fb.Pointer, fb.Size, fb.Width, fb.Height, fb.Stride}
}

func (fb *FramebufferInfo) encode(buf []byte) {
	binary.LittleEndian.PutUint64(buf[0:], fb.Pointer)
	binary.LittleEndian.PutUint64(buf[8:], fb.Size)
	binary.LittleEndian.PutUint64(buf[16:], fb.Width)
	binary.LittleEndian.PutUint64(buf[24:], fb.Height)
	binary.LittleEndian.PutUint64(buf[32:], fb.Stride)
}

// DecodeFramebufferInfo decodes the 40-byte wire form produced by
// MarshalBinary.
func DecodeFramebufferInfo(buf []byte) (FramebufferInfo, *kernel.Error) {
	if len(buf) < FramebufferInfoSize {
		return FramebufferInfo{}, errShortFramebufferInfo
	}

	return FramebufferInfo{
		Pointer: binary.LittleEndian.Uint64(buf[0:]),
		Size:    binary.LittleEndian.Uint64(buf[8:]),
		Width:   binary.LittleEndian.Uint64(buf[16:]),
		Height:  binary.LittleEndian.Uint64(buf[24:]),
		Stride:  binary.LittleEndian.Uint64(buf[32:]),
	}, nil
}

// PixelOffset returns the byte offset of pixel (x, y) from Pointer.
func (fb *FramebufferInfo) PixelOffset(x, y uint64) uint64 {
	return y*fb.Stride + x*BytesPerPixel
}

// BootInfo is the alternate handoff protocol that describes the kernel
// placement and its boot stack instead of a framebuffer. It has its own
// codec; the two structures are never decoded interchangeably even though
// they share a size.
type BootInfo struct {
	KernelBase  uint64
	KernelSize  uint64
	StackBase   uint64
	StackSize   uint64
	Environment uint64
}

// bootInfoTag is prepended to the BootInfo wire form to distinguish it from
// a FramebufferInfo.
var bootInfoTag = [8]byte{'g', 'b', 'b', 'o', 'o', 't', 'v', '1'}

// BootInfoSize is the encoded size of BootInfo including its tag.
const BootInfoSize = 48

var errBootInfoTag = &kernel.Error{Module: "handoff", Message: "boot info tag mismatch"}

// MarshalBinary encodes the structure prefixed by its tag.
func (bi BootInfo) MarshalBinary() ([]byte, error) {
	buf := make([]byte, BootInfoSize)
	copy(buf, bootInfoTag[:])
	binary.LittleEndian.PutUint64(buf[8:], bi.KernelBase)
	binary.LittleEndian.PutUint64(buf[16:], bi.KernelSize)
	binary.LittleEndian.PutUint64(buf[24:], bi.StackBase)
	binary.LittleEndian.PutUint64(buf[32:], bi.StackSize)
	binary.LittleEndian.PutUint64(buf[40:], bi.Environment)
	return buf, nil
}

// DecodeBootInfo decodes the tagged wire form produced by
// BootInfo.MarshalBinary.
func DecodeBootInfo(buf []byte) (BootInfo, *kernel.Error) {
	if len(buf) < BootInfoSize {
		return BootInfo{}, errShortBootInfo
	}

	if [8]byte(buf[:8]) != bootInfoTag {
		return BootInfo{}, errBootInfoTag
	}

	return BootInfo{
		KernelBase:  binary.LittleEndian.Uint64(buf[8:]),
		KernelSize:  binary.LittleEndian.Uint64(buf[16:]),
		StackBase:   binary.LittleEndian.Uint64(buf[24:]),
		StackSize:   binary.LittleEndian.Uint64(buf[32:]),
		Environment: binary.LittleEndian.Uint64(buf[40:]),
	}, nil
}

// Package boot implements the firmware-stage boot sequence: it selects the
// display mode, reads the kernel image from the boot volume, places its
// segments in memory, exits the firmware boot services and jumps to the
// kernel entry point.
package boot

import "gopherboot/kernel"

// PixelFormat describes the layout of a framebuffer pixel.
type PixelFormat uint32

// The supported pixel formats; values match the UEFI
// EFI_GRAPHICS_PIXEL_FORMAT enumeration.
const (
	PixelRGB PixelFormat = iota
	PixelBGR
	PixelBitMask
	PixelBltOnly
)

// ModeInfo describes a display mode reported by the graphics output device.
type ModeInfo struct {
	Width             uint32
	Height            uint32
	Format            PixelFormat
	PixelsPerScanLine uint32
}

// GraphicsOutput is implemented by display devices that can enumerate and
// activate display modes.
type GraphicsOutput interface {
	// ModeCount returns the number of supported modes. Valid mode numbers
	// are [0, ModeCount).
	ModeCount() uint32

	// QueryMode returns the attributes of mode.
	QueryMode(mode uint32) (ModeInfo, *kernel.Error)

	// SetMode activates mode.
	SetMode(mode uint32) *kernel.Error

	// Framebuffer returns the base address and size in bytes of the
	// framebuffer for the active mode.
	Framebuffer() (base, size uint64)
}

// FileInfo contains the file attributes needed by the loader.
type FileInfo struct {
	Size  uint64
	IsDir bool
}

// File is a read-only file opened from a Volume.
type File interface {
	Info() (FileInfo, *kernel.Error)
	Read(buf []byte) (int, *kernel.Error)
	Close()
}

// Volume provides access to files on the boot volume.
type Volume interface {
	// Open opens the file at path (relative to the volume root) for
	// reading.
	Open(path string) (File, *kernel.Error)
}

// Firmware exposes the boot services used by the loader.
type Firmware interface {
	// Allocate returns size bytes of firmware pool memory that remain
	// valid after boot services exit.
	Allocate(size uint64) ([]byte, *kernel.Error)

	// MemoryMapSize returns the current memory map size and the size of
	// each descriptor in bytes.
	MemoryMapSize() (mapSize, descriptorSize uint64, err *kernel.Error)

	// ExitBootServices retrieves the current memory map into mapBuf and
	// terminates boot services using its key. It fails if mapBuf is too
	// small for the map.
	ExitBootServices(mapBuf []byte) *kernel.Error
}

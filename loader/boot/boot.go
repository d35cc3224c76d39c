package boot

import (
	"gopherboot/handoff"
	"gopherboot/kernel"
	"gopherboot/kernel/kfmt"
	"gopherboot/loader/elfimage"
)

// DefaultKernelPath is the location of the kernel image on the boot volume.
const DefaultKernelPath = "kernel.elf"

var (
	errKernelReturned = &kernel.Error{Module: "boot", Message: "kernel entry point returned"}

	bootLog = kfmt.PrefixWriter{Prefix: []byte("[boot] ")}
)

// Loader drives the boot sequence. Use NewLoader to obtain a Loader with
// the default settings.
type Loader struct {
	GOP      GraphicsOutput
	Volume   Volume
	Firmware Firmware

	// Memory receives the kernel segments.
	Memory elfimage.Memory

	// KernelPath is the kernel image path on the boot volume.
	KernelPath string

	// MapHeadroom is the number of spare memory map descriptors to
	// allocate when exiting boot services.
	MapHeadroom uint64

	// EnterKernel transfers control to the kernel. It is only replaced by
	// tests and simulators.
	EnterKernel func(entry uintptr, info *handoff.FramebufferInfo)

	state         State
	exitAttempted bool

	mode   Mode
	image  []byte
	header elfimage.Header
	info   handoff.FramebufferInfo
}

// NewLoader returns a Loader that writes segments directly to physical
// memory and uses the default kernel path and memory map headroom.
func NewLoader(gop GraphicsOutput, vol Volume, fw Firmware) Loader {
	return Loader{
		GOP:         gop,
		Volume:      vol,
		Firmware:    fw,
		Memory:      elfimage.PhysMemory{},
		KernelPath:  DefaultKernelPath,
		MapHeadroom: DefaultMapHeadroom,
		EnterKernel: enterKernel,
	}
}

// State returns the current boot state.
func (l *Loader) State() State {
	return l.state
}

// FramebufferInfo returns the handoff structure passed to the kernel. It is
// populated once the display mode has been configured.
func (l *Loader) FramebufferInfo() handoff.FramebufferInfo {
	return l.info
}

// Boot runs the boot sequence. On success it does not return: control is
// transferred to the kernel entry point. Boot returns an error if any step
// fails or if the kernel entry point returns.
func (l *Loader) Boot() *kernel.Error {
	if err := l.configureGraphics(); err != nil {
		return err
	}

	if err := l.loadKernelImage(); err != nil {
		return err
	}

	if err := l.loadSegments(); err != nil {
		return err
	}

	if err := l.exitBootServices(); err != nil {
		return err
	}

	l.EnterKernel(uintptr(l.header.Entry), &l.info)
	return errKernelReturned
}

func (l *Loader) configureGraphics() *kernel.Error {
	mode, err := SelectMode(l.GOP)
	if err != nil {
		return err
	}

	l.mode = mode
	l.info = handoff.FramebufferInfo{
		Pointer: mode.FramebufferBase,
		Size:    mode.FramebufferSize,
		Width:   uint64(mode.Info.Width),
		Height:  uint64(mode.Info.Height),
		Stride:  uint64(mode.Info.PixelsPerScanLine) * handoff.BytesPerPixel,
	}

	return l.advance(GraphicsConfigured)
}

func (l *Loader) loadKernelImage() *kernel.Error {
	img, err := LoadKernelImage(l.Volume, l.Firmware, l.KernelPath)
	if err != nil {
		return err
	}

	hdr, err := elfimage.ReadHeader(img)
	if err != nil {
		return err
	}

	l.image, l.header = img, hdr
	kfmt.Fprintf(&bootLog, "kernel entry point: 0x%x, %d program headers\n", hdr.Entry, hdr.EntryCount)
	return l.advance(KernelImageLoaded)
}

func (l *Loader) loadSegments() *kernel.Error {
	if err := elfimage.Load(l.image, l.header, l.Memory); err != nil {
		return err
	}

	return l.advance(SegmentsLoaded)
}

// enterKernel copies info onto a 16-byte aligned stack as a by-value System
// V argument and calls entry. It halts the CPU if entry returns.
func enterKernel(entry uintptr, info *handoff.FramebufferInfo)

//go:build linux

package main

import (
	"gopherboot/handoff"
	"gopherboot/kernel"
	"gopherboot/loader/boot"
	"gopherboot/loader/simmem"
	"unsafe"
)

// descriptorSize matches the EFI_MEMORY_DESCRIPTOR stride reported by
// current firmware.
const descriptorSize = 48

var (
	errBadMode        = &kernel.Error{Module: "bootsim", Message: "invalid display mode"}
	errFramebufferMap = &kernel.Error{Module: "bootsim", Message: "could not map the framebuffer"}
	errServicesExited = &kernel.Error{Module: "bootsim", Message: "boot services are no longer available"}
	errMapTooSmall    = &kernel.Error{Module: "bootsim", Message: "memory map buffer too small"}
)

// defaultModes mimics a firmware that lists the required resolution twice:
// once with the wrong pixel format and once with a padded scan line.
var defaultModes = []boot.ModeInfo{
	{Width: 800, Height: 600, Format: boot.PixelBGR, PixelsPerScanLine: 800},
	{Width: 1024, Height: 768, Format: boot.PixelRGB, PixelsPerScanLine: 1024},
	{Width: 1600, Height: 900, Format: boot.PixelRGB, PixelsPerScanLine: 1600},
	{Width: 1600, Height: 900, Format: boot.PixelBGR, PixelsPerScanLine: 1664},
}

// simGOP is a graphics output device whose framebuffer is an anonymous host
// mapping. Framebuffer reports the host address of the mapping so that the
// kernel console can draw to it directly.
type simGOP struct {
	modes []boot.ModeInfo
	fb    *simmem.Region
}

func (g *simGOP) ModeCount() uint32 {
	return uint32(len(g.modes))
}

func (g *simGOP) QueryMode(mode uint32) (boot.ModeInfo, *kernel.Error) {
	if mode >= uint32(len(g.modes)) {
		return boot.ModeInfo{}, errBadMode
	}
	return g.modes[mode], nil
}

func (g *simGOP) SetMode(mode uint32) *kernel.Error {
	if mode >= uint32(len(g.modes)) {
		return errBadMode
	}

	info := g.modes[mode]
	fb, err := simmem.New(0, uint64(info.PixelsPerScanLine)*handoff.BytesPerPixel*uint64(info.Height))
	if err != nil {
		return errFramebufferMap
	}

	g.close()
	g.fb = fb
	return nil
}

func (g *simGOP) Framebuffer() (base, size uint64) {
	if g.fb == nil {
		return 0, 0
	}

	pixels := g.pixels()
	return uint64(uintptr(unsafe.Pointer(&pixels[0]))), uint64(len(pixels))
}

// pixels returns the framebuffer contents of the active mode.
func (g *simGOP) pixels() []byte {
	if g.fb == nil {
		return nil
	}
	return g.fb.Slice(0, g.fb.Size())
}

func (g *simGOP) close() {
	if g.fb != nil {
		g.fb.Close()
		g.fb = nil
	}
}

// simFirmware hands out pool memory from the Go heap and checks the memory
// map buffer the way ExitBootServices does: the map grows by one descriptor
// once the buffer for it has been allocated.
type simFirmware struct {
	mapEntries uint64
	exited     bool
}

func (fw *simFirmware) Allocate(size uint64) ([]byte, *kernel.Error) {
	if fw.exited {
		return nil, errServicesExited
	}

	fw.mapEntries++
	return make([]byte, size), nil
}

func (fw *simFirmware) MemoryMapSize() (uint64, uint64, *kernel.Error) {
	if fw.exited {
		return 0, 0, errServicesExited
	}
	return fw.mapEntries * descriptorSize, descriptorSize, nil
}

func (fw *simFirmware) ExitBootServices(mapBuf []byte) *kernel.Error {
	switch {
	case fw.exited:
		return errServicesExited
	case uint64(len(mapBuf)) < fw.mapEntries*descriptorSize:
		return errMapTooSmall
	}

	fw.exited = true
	return nil
}

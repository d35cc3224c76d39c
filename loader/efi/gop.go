package efi

import (
	"gopherboot/kernel"
	"gopherboot/loader/boot"
	"unsafe"
)

var (
	errLocateGOP = &kernel.Error{Module: "efi", Message: "graphics output protocol not available"}
	errQueryMode = &kernel.Error{Module: "efi", Message: "QueryMode failed"}
	errSetMode   = &kernel.Error{Module: "efi", Message: "SetMode failed"}
)

// gopProtocol overlays EFI_GRAPHICS_OUTPUT_PROTOCOL.
type gopProtocol struct {
	queryMode uintptr
	setMode   uintptr
	blt       uintptr
	mode      *gopMode
}

// gopMode overlays EFI_GRAPHICS_OUTPUT_PROTOCOL_MODE.
type gopMode struct {
	maxMode         uint32
	mode            uint32
	info            *gopModeInfo
	sizeOfInfo      uint64
	frameBufferBase uint64
	frameBufferSize uint64
}

// gopModeInfo overlays EFI_GRAPHICS_OUTPUT_MODE_INFORMATION.
type gopModeInfo struct {
	version           uint32
	width             uint32
	height            uint32
	pixelFormat       uint32
	pixelMasks        [4]uint32
	pixelsPerScanLine uint32
}

// GraphicsOutput implements boot.GraphicsOutput on top of the firmware
// graphics output protocol.
type GraphicsOutput struct {
	sys   *System
	proto *gopProtocol
}

// GraphicsOutput locates the graphics output protocol.
func (s *System) GraphicsOutput() (*GraphicsOutput, *kernel.Error) {
	iface, status := s.locateProtocol(&GraphicsOutputProtocolGUID)
	if status.IsError() || iface == 0 {
		return nil, errLocateGOP
	}

	s.gop = GraphicsOutput{sys: s, proto: (*gopProtocol)(unsafe.Pointer(iface))}
	return &s.gop, nil
}

// ModeCount implements boot.GraphicsOutput.
func (g *GraphicsOutput) ModeCount() uint32 {
	return g.proto.mode.maxMode
}

// QueryMode implements boot.GraphicsOutput.
func (g *GraphicsOutput) QueryMode(mode uint32) (boot.ModeInfo, *kernel.Error) {
	var (
		sizeOfInfo uintptr
		infoAddr   uintptr
	)

	status := Status(callFn(g.proto.queryMode, ptr(g.proto), uintptr(mode), ptr(&sizeOfInfo), ptr(&infoAddr), 0, 0))
	if status.IsError() || infoAddr == 0 {
		return boot.ModeInfo{}, errQueryMode
	}

	info := (*gopModeInfo)(unsafe.Pointer(infoAddr))
	modeInfo := boot.ModeInfo{
		Width:             info.width,
		Height:            info.height,
		Format:            boot.PixelFormat(info.pixelFormat),
		PixelsPerScanLine: info.pixelsPerScanLine,
	}
	g.sys.freePool(infoAddr)

	return modeInfo, nil
}

// SetMode implements boot.GraphicsOutput.
func (g *GraphicsOutput) SetMode(mode uint32) *kernel.Error {
	if Status(callFn(g.proto.setMode, ptr(g.proto), uintptr(mode), 0, 0, 0, 0)).IsError() {
		return errSetMode
	}
	return nil
}

// Framebuffer implements boot.GraphicsOutput.
func (g *GraphicsOutput) Framebuffer() (uint64, uint64) {
	return g.proto.mode.frameBufferBase, g.proto.mode.frameBufferSize
}

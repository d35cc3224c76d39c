package efi

import (
	"gopherboot/kernel"
	"gopherboot/loader/boot"
	"unsafe"
)

// memoryTypeLoaderData is EfiLoaderData. Pool allocations of this type
// survive ExitBootServices.
const memoryTypeLoaderData = 2

var (
	errAllocatePool     = &kernel.Error{Module: "efi", Message: "AllocatePool failed"}
	errGetMemoryMap     = &kernel.Error{Module: "efi", Message: "GetMemoryMap failed"}
	errMemoryMapTooBig  = &kernel.Error{Module: "efi", Message: "memory map does not fit the reserved buffer"}
	errExitBootServices = &kernel.Error{Module: "efi", Message: "ExitBootServices failed"}
)

var (
	_ boot.Firmware       = (*System)(nil)
	_ boot.GraphicsOutput = (*GraphicsOutput)(nil)
	_ boot.Volume         = (*Volume)(nil)
	_ boot.File           = (*File)(nil)
)

// System wraps the image handle and system table passed to the EFI
// application entry point. It implements boot.Firmware.
type System struct {
	image Handle
	st    *systemTable
	bs    *bootServices

	console Console
	gop     GraphicsOutput
	volume  Volume
}

// Init attaches s to the system table at tableAddr.
func (s *System) Init(image Handle, tableAddr uintptr) {
	s.image = image
	s.st = (*systemTable)(unsafe.Pointer(tableAddr))
	s.bs = (*bootServices)(unsafe.Pointer(s.st.bootServices))
	s.console.proto = (*simpleTextOutput)(unsafe.Pointer(s.st.conOut))
}

// Allocate implements boot.Firmware using AllocatePool.
func (s *System) Allocate(size uint64) ([]byte, *kernel.Error) {
	var addr uintptr
	status := Status(callFn(s.bs.allocatePool, memoryTypeLoaderData, uintptr(size), ptr(&addr), 0, 0, 0))
	if status.IsError() {
		return nil, errAllocatePool
	}

	return kernel.Bytes(addr, uintptr(size)), nil
}

// MemoryMapSize implements boot.Firmware by calling GetMemoryMap with an
// empty buffer.
func (s *System) MemoryMapSize() (uint64, uint64, *kernel.Error) {
	var (
		mapSize, mapKey, descSize uintptr
		descVersion               uint32
	)

	status := Status(callFn(s.bs.getMemoryMap, ptr(&mapSize), 0, ptr(&mapKey), ptr(&descSize), ptr(&descVersion), 0))
	if status != BufferTooSmall && status.IsError() {
		return 0, 0, errGetMemoryMap
	}

	return uint64(mapSize), uint64(descSize), nil
}

// ExitBootServices implements boot.Firmware. It retrieves the memory map
// into mapBuf and passes its key to ExitBootServices.
func (s *System) ExitBootServices(mapBuf []byte) *kernel.Error {
	var (
		mapSize          = uintptr(len(mapBuf))
		mapAddr          uintptr
		mapKey, descSize uintptr
		descVersion      uint32
	)

	if len(mapBuf) != 0 {
		mapAddr = uintptr(unsafe.Pointer(&mapBuf[0]))
	}

	switch status := Status(callFn(s.bs.getMemoryMap, ptr(&mapSize), mapAddr, ptr(&mapKey), ptr(&descSize), ptr(&descVersion), 0)); {
	case status == BufferTooSmall:
		return errMemoryMapTooBig
	case status.IsError():
		return errGetMemoryMap
	}

	if Status(callFn(s.bs.exitBootServices, uintptr(s.image), mapKey, 0, 0, 0, 0)).IsError() {
		return errExitBootServices
	}

	s.bs = nil
	return nil
}

// Console returns the firmware text console.
func (s *System) Console() *Console {
	return &s.console
}

// locateProtocol returns the first interface that implements guid.
func (s *System) locateProtocol(guid *GUID) (uintptr, Status) {
	var iface uintptr
	status := Status(callFn(s.bs.locateProtocol, ptr(guid), 0, ptr(&iface), 0, 0, 0))
	return iface, status
}

// handleProtocol returns the interface for guid installed on handle.
func (s *System) handleProtocol(handle Handle, guid *GUID) (uintptr, Status) {
	var iface uintptr
	status := Status(callFn(s.bs.handleProtocol, uintptr(handle), ptr(guid), ptr(&iface), 0, 0, 0))
	return iface, status
}

func (s *System) freePool(addr uintptr) {
	callFn(s.bs.freePool, addr, 0, 0, 0, 0, 0)
}

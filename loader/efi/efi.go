// Package efi provides the subset of the UEFI boot services used by the
// loader. Firmware tables are accessed through struct overlays and firmware
// functions are invoked with the Microsoft x64 calling convention via call.
// Nothing in this package allocates from the Go heap.
package efi

import "unsafe"

// Status is an EFI_STATUS value.
type Status uint64

const errorBit = 1 << 63

// Status codes returned by the boot services used by the loader.
const (
	Success          Status = 0
	InvalidParameter Status = errorBit | 2
	Unsupported      Status = errorBit | 3
	BufferTooSmall   Status = errorBit | 5
	NotFound         Status = errorBit | 14
)

// IsError returns true if s has the high bit set.
func (s Status) IsError() bool {
	return s&errorBit != 0
}

// Handle is an opaque EFI_HANDLE.
type Handle uintptr

// GUID is an EFI_GUID in its in-memory layout.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Protocol and information GUIDs used by the loader.
var (
	GraphicsOutputProtocolGUID   = GUID{0x9042a9de, 0x23dc, 0x4a38, [8]byte{0x96, 0xfb, 0x7a, 0xde, 0xd0, 0x80, 0x51, 0x6a}}
	LoadedImageProtocolGUID      = GUID{0x5b1b31a1, 0x9562, 0x11d2, [8]byte{0x8e, 0x3f, 0x00, 0xa0, 0xc9, 0x69, 0x72, 0x3b}}
	SimpleFileSystemProtocolGUID = GUID{0x964e5b22, 0x6459, 0x11d2, [8]byte{0x8e, 0x39, 0x00, 0xa0, 0xc9, 0x69, 0x72, 0x3b}}
	FileInfoGUID                 = GUID{0x09576e92, 0x6d3f, 0x11d2, [8]byte{0x8e, 0x39, 0x00, 0xa0, 0xc9, 0x69, 0x72, 0x3b}}
)

// tableHeader is the EFI_TABLE_HEADER that precedes every service table.
type tableHeader struct {
	signature  uint64
	revision   uint32
	headerSize uint32
	crc32      uint32
	reserved   uint32
}

// systemTable overlays EFI_SYSTEM_TABLE.
type systemTable struct {
	hdr              tableHeader
	firmwareVendor   uintptr
	firmwareRevision uint32
	_                uint32
	conInHandle      Handle
	conIn            uintptr
	conOutHandle     Handle
	conOut           uintptr
	stdErrHandle     Handle
	stdErr           uintptr
	runtimeServices  uintptr
	bootServices     uintptr
}

// bootServices overlays EFI_BOOT_SERVICES up to LocateProtocol. Each field
// holds the address of a firmware function.
type bootServices struct {
	hdr                    tableHeader
	raiseTPL               uintptr
	restoreTPL             uintptr
	allocatePages          uintptr
	freePages              uintptr
	getMemoryMap           uintptr
	allocatePool           uintptr
	freePool               uintptr
	createEvent            uintptr
	setTimer               uintptr
	waitForEvent           uintptr
	signalEvent            uintptr
	closeEvent             uintptr
	checkEvent             uintptr
	installProtocol        uintptr
	reinstallProtocol      uintptr
	uninstallProtocol      uintptr
	handleProtocol         uintptr
	_                      uintptr
	registerProtocolNotify uintptr
	locateHandle           uintptr
	locateDevicePath       uintptr
	installConfigTable     uintptr
	loadImage              uintptr
	startImage             uintptr
	exit                   uintptr
	unloadImage            uintptr
	exitBootServices       uintptr
	getNextMonotonicCount  uintptr
	stall                  uintptr
	setWatchdogTimer       uintptr
	connectController      uintptr
	disconnectController   uintptr
	openProtocol           uintptr
	closeProtocol          uintptr
	openProtocolInfo       uintptr
	protocolsPerHandle     uintptr
	locateHandleBuffer     uintptr
	locateProtocol         uintptr
}

var (
	_ [96]byte  = [unsafe.Offsetof(systemTable{}.bootServices)]byte{}
	_ [232]byte = [unsafe.Offsetof(bootServices{}.exitBootServices)]byte{}
	_ [320]byte = [unsafe.Offsetof(bootServices{}.locateProtocol)]byte{}
)

// callFn is mocked by tests.
var callFn = call

// call invokes the firmware function at fn with up to six arguments using
// the Microsoft x64 calling convention and returns the value left in RAX.
func call(fn, a1, a2, a3, a4, a5, a6 uintptr) uintptr

// ptr returns the address of the value v points to as an argument for call.
func ptr[T any](v *T) uintptr {
	return uintptr(unsafe.Pointer(v))
}

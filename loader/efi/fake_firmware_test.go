package efi

import (
	"runtime/debug"
	"strings"
	"testing"
	"unsafe"
)

const (
	fakeImageHandle  = Handle(0x1111)
	fakeDeviceHandle = Handle(0x2222)
	fakeMapKey       = 0x77
	fakeDescSize     = 48
)

type fakeFile struct {
	data  []byte
	isDir bool
}

// fakeFirmware backs the firmware tables with Go memory and serves calls
// through callFn. Function pointers in the tables are small integer ids.
type fakeFirmware struct {
	st     systemTable
	bs     bootServices
	conOut simpleTextOutput

	gop     gopProtocol
	gopMode gopMode
	modes   []gopModeInfo

	image   loadedImage
	fs      simpleFileSystem
	root    fileProtocol
	fileObj fileProtocol

	files    map[string]fakeFile
	openFile *fakeFile
	lastPath string

	mapEntries uintptr
	pools      [][]byte
	freed      int
	exitCalls  int
	exitKey    uintptr
	console    strings.Builder

	funcs  map[uintptr]func(a [6]uintptr) Status
	nextID uintptr
}

func (f *fakeFirmware) register(fn func(a [6]uintptr) Status) uintptr {
	f.nextID++
	f.funcs[f.nextID] = fn
	return f.nextID
}

func putUintptr(addr, v uintptr) {
	*(*uintptr)(unsafe.Pointer(addr)) = v
}

func getUintptr(addr uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(addr))
}

func decodeUCS2(addr uintptr) string {
	var sb strings.Builder
	for ; ; addr += 2 {
		ch := *(*uint16)(unsafe.Pointer(addr))
		if ch == 0 {
			return sb.String()
		}
		sb.WriteByte(byte(ch))
	}
}

// newFakeFirmware installs a fake firmware and returns it together with a
// System attached to its tables. The original callFn is restored when the
// test completes.
func newFakeFirmware(t *testing.T) (*fakeFirmware, *System) {
	f := &fakeFirmware{
		files:      make(map[string]fakeFile),
		funcs:      make(map[uintptr]func([6]uintptr) Status),
		mapEntries: 30,
	}

	f.bs.allocatePool = f.register(func(a [6]uintptr) Status {
		if a[0] != memoryTypeLoaderData {
			return InvalidParameter
		}
		buf := make([]byte, a[1]+1)
		f.pools = append(f.pools, buf)
		putUintptr(a[2], uintptr(unsafe.Pointer(&buf[0])))
		return Success
	})
	f.bs.freePool = f.register(func(a [6]uintptr) Status {
		f.freed++
		return Success
	})
	f.bs.getMemoryMap = f.register(func(a [6]uintptr) Status {
		required := f.mapEntries * fakeDescSize
		putUintptr(a[3], fakeDescSize)
		if getUintptr(a[0]) < required {
			putUintptr(a[0], required)
			return BufferTooSmall
		}
		putUintptr(a[0], required)
		putUintptr(a[2], fakeMapKey)
		return Success
	})
	f.bs.exitBootServices = f.register(func(a [6]uintptr) Status {
		f.exitCalls++
		f.exitKey = a[1]
		if Handle(a[0]) != fakeImageHandle || a[1] != fakeMapKey {
			return InvalidParameter
		}
		return Success
	})
	f.bs.locateProtocol = f.register(func(a [6]uintptr) Status {
		if *(*GUID)(unsafe.Pointer(a[0])) != GraphicsOutputProtocolGUID || len(f.modes) == 0 {
			return NotFound
		}
		putUintptr(a[2], uintptr(unsafe.Pointer(&f.gop)))
		return Success
	})
	f.bs.handleProtocol = f.register(func(a [6]uintptr) Status {
		guid := *(*GUID)(unsafe.Pointer(a[1]))
		switch {
		case Handle(a[0]) == fakeImageHandle && guid == LoadedImageProtocolGUID:
			putUintptr(a[2], uintptr(unsafe.Pointer(&f.image)))
		case Handle(a[0]) == fakeDeviceHandle && guid == SimpleFileSystemProtocolGUID:
			putUintptr(a[2], uintptr(unsafe.Pointer(&f.fs)))
		default:
			return Unsupported
		}
		return Success
	})

	f.conOut.outputString = f.register(func(a [6]uintptr) Status {
		f.console.WriteString(decodeUCS2(a[1]))
		return Success
	})

	f.gop.mode = &f.gopMode
	f.gop.queryMode = f.register(func(a [6]uintptr) Status {
		if a[1] >= uintptr(len(f.modes)) {
			return InvalidParameter
		}
		putUintptr(a[2], unsafe.Sizeof(gopModeInfo{}))
		putUintptr(a[3], uintptr(unsafe.Pointer(&f.modes[a[1]])))
		return Success
	})
	f.gop.setMode = f.register(func(a [6]uintptr) Status {
		f.gopMode.mode = uint32(a[1])
		f.gopMode.frameBufferBase = 0xc0000000
		f.gopMode.frameBufferSize = uint64(f.modes[a[1]].pixelsPerScanLine) * uint64(f.modes[a[1]].height) * 4
		return Success
	})

	f.image.deviceHandle = fakeDeviceHandle
	f.fs.openVolume = f.register(func(a [6]uintptr) Status {
		putUintptr(a[1], uintptr(unsafe.Pointer(&f.root)))
		return Success
	})
	f.root.open = f.register(func(a [6]uintptr) Status {
		f.lastPath = decodeUCS2(a[2])
		file, ok := f.files[f.lastPath]
		if !ok || a[3] != fileModeRead {
			return NotFound
		}
		f.openFile = &file
		putUintptr(a[1], uintptr(unsafe.Pointer(&f.fileObj)))
		return Success
	})
	f.fileObj.getInfo = f.register(func(a [6]uintptr) Status {
		if *(*GUID)(unsafe.Pointer(a[1])) != FileInfoGUID {
			return Unsupported
		}
		info := (*fileInfo)(unsafe.Pointer(a[3]))
		info.fileSize = uint64(len(f.openFile.data))
		if f.openFile.isDir {
			info.attribute = fileAttrDirectory
		}
		return Success
	})
	f.fileObj.read = f.register(func(a [6]uintptr) Status {
		size := getUintptr(a[1])
		dst := unsafe.Slice((*byte)(unsafe.Pointer(a[2])), size)
		putUintptr(a[1], uintptr(copy(dst, f.openFile.data)))
		return Success
	})
	f.fileObj.close = f.register(func(a [6]uintptr) Status {
		f.openFile = nil
		return Success
	})

	f.st.conOut = uintptr(unsafe.Pointer(&f.conOut))
	f.st.bootServices = uintptr(unsafe.Pointer(&f.bs))

	callFn = func(fn, a1, a2, a3, a4, a5, a6 uintptr) uintptr {
		handler, ok := f.funcs[fn]
		if !ok {
			t.Fatalf("call to unknown firmware function %d", fn)
		}
		return uintptr(handler([6]uintptr{a1, a2, a3, a4, a5, a6}))
	}
	t.Cleanup(func() { callFn = call })

	// Firmware callbacks write through uintptr copies of the caller's stack
	// addresses, so the stack must not move while they run: grow it up
	// front and keep the collector from shrinking it.
	growStack()
	gcPercent := debug.SetGCPercent(-1)
	t.Cleanup(func() { debug.SetGCPercent(gcPercent) })

	sys := &System{}
	sys.Init(fakeImageHandle, uintptr(unsafe.Pointer(&f.st)))
	return f, sys
}

//go:noinline
func growStack() byte {
	var buf [1 << 20]byte
	buf[len(buf)-1] = 1
	return buf[0] + buf[len(buf)-1]
}

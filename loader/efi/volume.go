package efi

import (
	"gopherboot/kernel"
	"gopherboot/loader/boot"
	"unsafe"
)

const (
	fileModeRead      = 1
	fileAttrDirectory = 0x10

	maxOpenFiles    = 4
	maxPathLen      = 255
	fileInfoBufSize = 512
)

var (
	errLoadedImage  = &kernel.Error{Module: "efi", Message: "loaded image protocol not available"}
	errSimpleFS     = &kernel.Error{Module: "efi", Message: "boot device has no simple file system"}
	errOpenVolume   = &kernel.Error{Module: "efi", Message: "OpenVolume failed"}
	errPathTooLong  = &kernel.Error{Module: "efi", Message: "file path is too long"}
	errTooManyFiles = &kernel.Error{Module: "efi", Message: "too many open files"}
	errOpenFile     = &kernel.Error{Module: "efi", Message: "file not found"}
	errGetInfo      = &kernel.Error{Module: "efi", Message: "GetInfo failed"}
	errReadFile     = &kernel.Error{Module: "efi", Message: "Read failed"}
)

// loadedImage overlays the head of EFI_LOADED_IMAGE_PROTOCOL.
type loadedImage struct {
	revision     uint32
	_            uint32
	parentHandle Handle
	systemTable  uintptr
	deviceHandle Handle
}

// simpleFileSystem overlays EFI_SIMPLE_FILE_SYSTEM_PROTOCOL.
type simpleFileSystem struct {
	revision   uint64
	openVolume uintptr
}

// fileProtocol overlays EFI_FILE_PROTOCOL.
type fileProtocol struct {
	revision    uint64
	open        uintptr
	close       uintptr
	delete      uintptr
	read        uintptr
	write       uintptr
	getPosition uintptr
	setPosition uintptr
	getInfo     uintptr
}

// fileInfo overlays the fixed part of EFI_FILE_INFO.
type fileInfo struct {
	size             uint64
	fileSize         uint64
	physicalSize     uint64
	createTime       [16]byte
	lastAccessTime   [16]byte
	modificationTime [16]byte
	attribute        uint64
}

var _ [72]byte = [unsafe.Offsetof(fileInfo{}.attribute)]byte{}

// Volume implements boot.Volume for the file system the loader image was
// read from. Files are served from a fixed pool.
type Volume struct {
	root  *fileProtocol
	files [maxOpenFiles]File
	path  [maxPathLen + 1]uint16
}

// File implements boot.File.
type File struct {
	proto *fileProtocol
	open  bool
	info  [fileInfoBufSize]byte
}

// BootVolume opens the root directory of the device the loader was
// loaded from.
func (s *System) BootVolume() (*Volume, *kernel.Error) {
	imageAddr, status := s.handleProtocol(s.image, &LoadedImageProtocolGUID)
	if status.IsError() || imageAddr == 0 {
		return nil, errLoadedImage
	}

	image := (*loadedImage)(unsafe.Pointer(imageAddr))
	fsAddr, status := s.handleProtocol(image.deviceHandle, &SimpleFileSystemProtocolGUID)
	if status.IsError() || fsAddr == 0 {
		return nil, errSimpleFS
	}

	fs := (*simpleFileSystem)(unsafe.Pointer(fsAddr))
	var root uintptr
	if Status(callFn(fs.openVolume, fsAddr, ptr(&root), 0, 0, 0, 0)).IsError() || root == 0 {
		return nil, errOpenVolume
	}

	s.volume.root = (*fileProtocol)(unsafe.Pointer(root))
	return &s.volume, nil
}

// Open implements boot.Volume. Forward slashes in path are converted to the
// backslash separator used by UEFI.
func (v *Volume) Open(path string) (boot.File, *kernel.Error) {
	if len(path) > maxPathLen {
		return nil, errPathTooLong
	}

	var f *File
	for i := range v.files {
		if !v.files[i].open {
			f = &v.files[i]
			break
		}
	}
	if f == nil {
		return nil, errTooManyFiles
	}

	for i := 0; i < len(path); i++ {
		ch := path[i]
		if ch == '/' {
			ch = '\\'
		}
		v.path[i] = uint16(ch)
	}
	v.path[len(path)] = 0

	var handle uintptr
	status := Status(callFn(v.root.open, ptr(v.root), ptr(&handle), ptr(&v.path[0]), fileModeRead, 0, 0))
	if status.IsError() || handle == 0 {
		return nil, errOpenFile
	}

	f.proto = (*fileProtocol)(unsafe.Pointer(handle))
	f.open = true
	return f, nil
}

// Info implements boot.File.
func (f *File) Info() (boot.FileInfo, *kernel.Error) {
	size := uintptr(len(f.info))
	status := Status(callFn(f.proto.getInfo, ptr(f.proto), ptr(&FileInfoGUID), ptr(&size), ptr(&f.info[0]), 0, 0))
	if status.IsError() {
		return boot.FileInfo{}, errGetInfo
	}

	info := (*fileInfo)(unsafe.Pointer(&f.info[0]))
	return boot.FileInfo{
		Size:  info.fileSize,
		IsDir: info.attribute&fileAttrDirectory != 0,
	}, nil
}

// Read implements boot.File. It issues a single firmware read for up to
// len(buf) bytes.
func (f *File) Read(buf []byte) (int, *kernel.Error) {
	if len(buf) == 0 {
		return 0, nil
	}

	size := uintptr(len(buf))
	if Status(callFn(f.proto.read, ptr(f.proto), ptr(&size), ptr(&buf[0]), 0, 0, 0)).IsError() {
		return 0, errReadFile
	}

	return int(size), nil
}

// Close implements boot.File and returns the File to the pool.
func (f *File) Close() {
	if !f.open {
		return
	}

	callFn(f.proto.close, ptr(f.proto), 0, 0, 0, 0, 0)
	f.proto = nil
	f.open = false
}

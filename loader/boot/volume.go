package boot

import (
	"gopherboot/kernel"
	"gopherboot/kernel/kfmt"
)

var (
	errKernelIsDir  = &kernel.Error{Module: "boot", Message: "kernel image path refers to a directory"}
	errKernelShort  = &kernel.Error{Module: "boot", Message: "short read while loading the kernel image"}
	errKernelTooBig = &kernel.Error{Module: "boot", Message: "allocated buffer is smaller than the kernel image"}
)

// LoadKernelImage reads the file at path from vol into a buffer allocated
// from the firmware pool. The buffer is exactly as large as the file and is
// filled with a single read.
func LoadKernelImage(vol Volume, fw Firmware, path string) ([]byte, *kernel.Error) {
	f, err := vol.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Info()
	if err != nil {
		return nil, err
	}

	if info.IsDir {
		return nil, errKernelIsDir
	}

	img, err := fw.Allocate(info.Size)
	if err != nil {
		return nil, err
	}

	if uint64(len(img)) < info.Size {
		return nil, errKernelTooBig
	}
	img = img[:info.Size]

	n, err := f.Read(img)
	if err != nil {
		return nil, err
	}

	if uint64(n) != info.Size {
		return nil, errKernelShort
	}

	kfmt.Fprintf(&bootLog, "loaded %s (%d bytes)\n", path, info.Size)
	return img, nil
}

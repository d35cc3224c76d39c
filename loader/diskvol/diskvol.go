// Package diskvol serves the loader's boot.Volume interface from a FAT32
// disk image on the host, and builds such images. It lets the complete boot
// sequence run in a host process against the same volume layout the
// firmware sees.
package diskvol

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	diskfs "github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/disk"
	"github.com/diskfs/go-diskfs/filesystem"

	"gopherboot/kernel"
	"gopherboot/loader/boot"
)

// DefaultImageSize is large enough for FAT32 plus a loader and kernel.
const DefaultImageSize = 64 << 20

var (
	errNotFound = &kernel.Error{Module: "diskvol", Message: "file not found"}
	errRead     = &kernel.Error{Module: "diskvol", Message: "read failed"}
)

// Entry is a file to place on a new image.
type Entry struct {
	// Path is the absolute destination path, e.g. /EFI/BOOT/BOOTX64.EFI.
	Path string

	Data []byte
}

// Build creates a raw disk image at imagePath holding a single FAT32
// filesystem (no partition table) with the supplied entries. Parent
// directories are created as needed. An existing file is replaced.
func Build(imagePath string, size int64, label string, entries []Entry) error {
	if err := os.Remove(imagePath); err != nil && !os.IsNotExist(err) {
		return err
	}

	d, err := diskfs.Create(imagePath, size, diskfs.Raw, diskfs.SectorSizeDefault)
	if err != nil {
		return fmt.Errorf("creating %s: %w", imagePath, err)
	}
	defer d.File.Close()

	fs, err := d.CreateFilesystem(disk.FilesystemSpec{
		Partition:   0,
		FSType:      filesystem.TypeFat32,
		VolumeLabel: label,
	})
	if err != nil {
		return fmt.Errorf("formatting %s: %w", imagePath, err)
	}

	for _, entry := range entries {
		if dir := path.Dir(entry.Path); dir != "/" {
			if err = fs.Mkdir(dir); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
		}

		if err = writeFile(fs, entry); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(fs filesystem.FileSystem, entry Entry) error {
	f, err := fs.OpenFile(entry.Path, os.O_CREATE|os.O_RDWR)
	if err != nil {
		return fmt.Errorf("creating %s: %w", entry.Path, err)
	}
	defer f.Close()

	if _, err = f.Write(entry.Data); err != nil {
		return fmt.Errorf("writing %s: %w", entry.Path, err)
	}

	return nil
}

// Volume implements boot.Volume on top of a FAT32 image.
type Volume struct {
	disk *disk.Disk
	fs   filesystem.FileSystem
}

// Open opens the disk image at imagePath read-only.
func Open(imagePath string) (*Volume, error) {
	d, err := diskfs.Open(imagePath, diskfs.WithOpenMode(diskfs.ReadOnly))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", imagePath, err)
	}

	fs, err := d.GetFilesystem(0)
	if err != nil {
		d.File.Close()
		return nil, fmt.Errorf("reading filesystem of %s: %w", imagePath, err)
	}

	return &Volume{disk: d, fs: fs}, nil
}

// Close releases the underlying image file.
func (v *Volume) Close() error {
	return v.disk.File.Close()
}

// Open implements boot.Volume. Paths are relative to the volume root and
// matched case-insensitively as FAT does.
func (v *Volume) Open(filePath string) (boot.File, *kernel.Error) {
	full := path.Clean("/" + strings.ReplaceAll(filePath, `\`, "/"))
	dir, name := path.Split(full)

	entries, err := v.fs.ReadDir(dir)
	if err != nil {
		return nil, errNotFound
	}

	for _, fi := range entries {
		if !strings.EqualFold(fi.Name(), name) {
			continue
		}

		f := &file{info: boot.FileInfo{Size: uint64(fi.Size()), IsDir: fi.IsDir()}}
		if !fi.IsDir() {
			if f.r, err = v.fs.OpenFile(full, os.O_RDONLY); err != nil {
				return nil, errNotFound
			}
		}
		return f, nil
	}

	return nil, errNotFound
}

type file struct {
	info boot.FileInfo
	r    filesystem.File
}

func (f *file) Info() (boot.FileInfo, *kernel.Error) {
	return f.info, nil
}

func (f *file) Read(buf []byte) (int, *kernel.Error) {
	if f.r == nil {
		return 0, errRead
	}

	n, err := io.ReadFull(f.r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return n, errRead
	}
	return n, nil
}

func (f *file) Close() {
	if f.r != nil {
		f.r.Close()
	}
}

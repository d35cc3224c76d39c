// Command mkesp builds a FAT32 EFI system partition image that holds the
// loader at the default removable-media boot path and the kernel image at
// the volume root.
package main

import (
	"errors"
	"flag"
	"fmt"
	"gopherboot/loader/boot"
	"gopherboot/loader/diskvol"
	"os"
)

// loaderPath is where firmware looks for a loader on removable media.
const loaderPath = "/EFI/BOOT/BOOTX64.EFI"

func exit(err error) {
	fmt.Fprintf(os.Stderr, "[mkesp] error: %s\n", err.Error())
	os.Exit(1)
}

// espEntries reads the loader and kernel images and returns their
// locations on the boot volume.
func espEntries(loaderFile, kernelFile string) ([]diskvol.Entry, error) {
	loaderData, err := os.ReadFile(loaderFile)
	if err != nil {
		return nil, err
	}

	kernelData, err := os.ReadFile(kernelFile)
	if err != nil {
		return nil, err
	}

	if len(kernelData) < 4 || string(kernelData[:4]) != "\x7fELF" {
		return nil, fmt.Errorf("%s is not an ELF image", kernelFile)
	}

	return []diskvol.Entry{
		{Path: loaderPath, Data: loaderData},
		{Path: "/" + boot.DefaultKernelPath, Data: kernelData},
	}, nil
}

func runTool() error {
	loaderFile := flag.String("loader", "", "the PE32+ loader image")
	kernelFile := flag.String("kernel", "", "the kernel ELF image")
	out := flag.String("out", "esp.img", "the disk image to create")
	size := flag.Int64("size", diskvol.DefaultImageSize, "the image size in bytes")
	label := flag.String("label", "GOPHERBOOT", "the FAT volume label")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, "mkesp: build a bootable EFI system partition image\n\n")
		fmt.Fprint(os.Stderr, "Usage: mkesp [options]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *loaderFile == "" || *kernelFile == "" {
		return errors.New("both -loader and -kernel must be specified")
	}

	entries, err := espEntries(*loaderFile, *kernelFile)
	if err != nil {
		return err
	}

	return diskvol.Build(*out, *size, *label, entries)
}

func main() {
	if err := runTool(); err != nil {
		exit(err)
	}
}

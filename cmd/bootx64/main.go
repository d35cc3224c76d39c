// Command bootx64 is the UEFI loader. It selects the display mode, loads
// kernel.elf from the boot volume, exits the firmware boot services and
// jumps to the kernel entry point.
//
// The loader is linked as a freestanding ELF with efiMain as its entry point
// and converted to a PE32+ EFI application, e.g.:
//
//	GOOS=linux GOARCH=amd64 CGO_ENABLED=0 go build \
//	  -ldflags "-E main.efiMain -T 0x400000" -o bootx64.elf ./cmd/bootx64
//	go run ./tools/redirects populate-table bootx64.elf
//	objcopy --target efi-app-x86_64 bootx64.elf BOOTX64.EFI
//	go run ./tools/mkesp -loader BOOTX64.EFI -kernel kernel.elf -out esp.img
package main

import (
	"gopherboot/kernel"
	"gopherboot/kernel/goruntime"
	"gopherboot/kernel/kfmt"
	"gopherboot/loader/boot"
	"gopherboot/loader/efi"
)

// loaderStackSize is the size of the stack that efiMain switches to.
const loaderStackSize = 128 << 10

var (
	// imageHandle and systemTable are stored by efiMain.
	imageHandle efi.Handle
	systemTable uintptr

	loaderStack [loaderStackSize]byte

	sys    efi.System
	loader boot.Loader
)

// efiMain is the entry point invoked by the firmware. It is implemented in
// assembly.
func efiMain()

// efiStart is called by efiMain on the loader stack once the boot goroutine
// is in place. It never returns.
func efiStart() {
	sys.Init(imageHandle, systemTable)
	kfmt.SetOutputSink(sys.Console())

	if err := goruntime.ApplyRedirects(); err != nil {
		kfmt.Panic(err)
	}

	if err := run(); err != nil {
		kfmt.Panic(err)
	}
}

// run attaches the firmware protocols to the loader and boots the kernel.
func run() *kernel.Error {
	gop, err := sys.GraphicsOutput()
	if err != nil {
		return err
	}

	vol, err := sys.BootVolume()
	if err != nil {
		return err
	}

	loader = boot.NewLoader(gop, vol, &sys)
	return loader.Boot()
}

// main makes a dummy call to the actual loader entrypoint function. It is
// intentionally defined to prevent the Go compiler from optimizing away the
// real loader code; the linker entry point is efiMain.
func main() {
	efiStart()
}

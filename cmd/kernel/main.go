// Command kernel links the freestanding kernel image loaded by bootx64.
//
// The kernel does not run through the Go runtime entry point. Build it with
// the rt0 stub as the ELF entry and a fixed load address, e.g.:
//
//	GOOS=linux GOARCH=amd64 CGO_ENABLED=0 go build \
//	  -ldflags "-E gopherboot/kernel/kmain.rt0 -T 0x200000" \
//	  -o kernel.elf ./cmd/kernel
//	go run ./tools/redirects populate-table kernel.elf
package main

import (
	"gopherboot/handoff"
	"gopherboot/kernel/kmain"
)

var bootInfo handoff.FramebufferInfo

// main makes a dummy call to the actual kernel main entrypoint function. It
// is intentionally defined to prevent the Go compiler from optimizing away the
// real kernel code.
//
// A global variable is passed as an argument to Kmain to prevent the compiler
// from inlining the actual call and removing Kmain from the generated binary.
func main() {
	kmain.Kmain(&bootInfo)
}

//go:build linux

// Command bootsim runs the loader boot sequence as a host process. It reads
// the kernel from a FAT32 boot volume image, offers a set of simulated
// display modes, loads the kernel segments into an anonymous mapping and,
// in place of the jump to the kernel, brings up the kernel terminal on the
// simulated framebuffer. The resulting screen is written as a PNG file.
//
// Usage:
//
//	go run ./cmd/bootsim -image esp.img -out screen.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

func exit(err error) {
	fmt.Fprintf(os.Stderr, "[bootsim] error: %s\n", err.Error())
	os.Exit(1)
}

func runTool() error {
	imagePath := flag.String("image", "", "the boot volume image holding kernel.elf")
	out := flag.String("out", "bootsim.png", "the PNG file that receives the simulated screen")
	mapEntries := flag.Uint64("map-entries", 64, "the number of memory map descriptors reported by the simulated firmware")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, "bootsim: run the boot sequence against a disk image\n\n")
		fmt.Fprint(os.Stderr, "Usage: bootsim [options]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *imagePath == "" {
		return errors.New("missing -image argument")
	}

	res, err := simulate(config{
		imagePath:  *imagePath,
		modes:      defaultModes,
		mapEntries: *mapEntries,
		log:        os.Stdout,
	})
	if err != nil {
		return err
	}

	if res.screen == nil {
		return errors.New("the kernel terminal could not be initialized")
	}

	return renderScreen(res).SavePNG(*out)
}

func main() {
	if err := runTool(); err != nil {
		exit(err)
	}
}

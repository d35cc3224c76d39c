//go:build linux

package main

import (
	"bytes"
	"debug/elf"
	"fmt"
	"gopherboot/handoff"
	"gopherboot/kernel"
	"gopherboot/kernel/hal"
	"gopherboot/kernel/kfmt"
	"gopherboot/loader/boot"
	"gopherboot/loader/diskvol"
	"gopherboot/loader/simmem"
	"io"
)

const pageSize = 4096

var simLog = kfmt.PrefixWriter{Prefix: []byte("[bootsim] ")}

// config controls a simulated boot.
type config struct {
	// imagePath is the FAT32 boot volume image.
	imagePath string

	// modes lists the display modes offered by the simulated firmware.
	modes []boot.ModeInfo

	// mapEntries is the initial number of memory map descriptors.
	mapEntries uint64

	// log receives the loader and kernel console output.
	log io.Writer
}

// result describes a completed simulated boot.
type result struct {
	entry    uintptr
	info     handoff.FramebufferInfo
	segments int

	// screen holds a copy of the framebuffer after the kernel console
	// has been initialized.
	screen []byte
}

type simulation struct {
	cfg config

	gop  simGOP
	fw   simFirmware
	mem  *simmem.Region
	kelf *elf.File

	entered bool
	res     result
}

// simulate runs the complete loader boot sequence against the volume in
// cfg.imagePath. Instead of jumping to the kernel it brings up the kernel
// terminal on the simulated framebuffer and checks that every loadable
// segment landed where the ELF program headers say it should.
func simulate(cfg config) (*result, error) {
	s := &simulation{
		cfg: cfg,
		gop: simGOP{modes: cfg.modes},
		fw:  simFirmware{mapEntries: cfg.mapEntries},
	}
	defer s.close()

	origSink := kfmt.GetOutputSink()
	kfmt.SetOutputSink(cfg.log)
	defer kfmt.SetOutputSink(origSink)

	vol, err := diskvol.Open(cfg.imagePath)
	if err != nil {
		return nil, err
	}
	defer vol.Close()

	if err := s.mapKernelMemory(vol); err != nil {
		return nil, err
	}

	loader := boot.NewLoader(&s.gop, vol, &s.fw)
	loader.Memory = s.mem
	loader.EnterKernel = s.enterKernel

	bootErr := loader.Boot()
	if !s.entered {
		return nil, fmt.Errorf("boot failed in state %s: %s: %s", loader.State(), bootErr.Module, bootErr.Message)
	}

	if err := s.mem.Err(); err != nil {
		return nil, err
	}

	if err := s.verifySegments(); err != nil {
		return nil, err
	}

	return &s.res, nil
}

// mapKernelMemory reads the kernel image from vol and maps a region that
// spans all of its loadable segments.
func (s *simulation) mapKernelMemory(vol boot.Volume) error {
	img, kerr := boot.LoadKernelImage(vol, &s.fw, boot.DefaultKernelPath)
	if kerr != nil {
		return fmt.Errorf("%s: %s", kerr.Module, kerr.Message)
	}

	kelf, err := elf.NewFile(bytes.NewReader(img))
	if err != nil {
		return fmt.Errorf("parsing kernel image: %w", err)
	}

	lo, hi := ^uint64(0), uint64(0)
	for _, prog := range kelf.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}

		if prog.Vaddr < lo {
			lo = prog.Vaddr
		}
		if end := prog.Vaddr + prog.Memsz; end > hi {
			hi = end
		}
	}

	if hi == 0 {
		return fmt.Errorf("kernel image has no loadable segments")
	}

	lo &^= pageSize - 1
	hi = (hi + pageSize - 1) &^ (pageSize - 1)

	mem, err := simmem.New(lo, hi-lo)
	if err != nil {
		return err
	}

	s.kelf, s.mem = kelf, mem
	return nil
}

// enterKernel replaces the jump to the kernel. It performs the terminal
// bring-up that the kernel runs first and reports the handoff.
func (s *simulation) enterKernel(entry uintptr, info *handoff.FramebufferInfo) {
	s.entered = true
	s.res.entry, s.res.info = entry, *info

	if err := hal.InitTerminal(info); err != nil {
		kfmt.Fprintf(&simLog, "kernel terminal: %s\n", err.Message)
		return
	}

	// Echo the kernel console to the host log as well.
	kfmt.SetOutputSink(io.MultiWriter(hal.ActiveTTY(), s.cfg.log))

	kfmt.Printf("Hello, World!\n")
	kfmt.Fprintf(&simLog, "kernel entry point: 0x%x\n", entry)
	kfmt.Fprintf(&simLog, "framebuffer: %dx%d, stride %d, %d bytes\n", info.Width, info.Height, info.Stride, info.Size)

	s.res.screen = append([]byte(nil), kernel.Bytes(uintptr(info.Pointer), uintptr(info.Size))...)
}

// verifySegments compares the simulated memory against the loadable
// segments decoded by debug/elf.
func (s *simulation) verifySegments() error {
	if uint64(s.res.entry) != s.kelf.Entry {
		return fmt.Errorf("kernel entered at 0x%x; image entry point is 0x%x", s.res.entry, s.kelf.Entry)
	}

	for index, prog := range s.kelf.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}

		loaded := s.mem.Slice(prog.Vaddr, prog.Memsz)
		if loaded == nil {
			return fmt.Errorf("segment %d: [0x%x, 0x%x) was not mapped", index, prog.Vaddr, prog.Vaddr+prog.Memsz)
		}

		fileData := make([]byte, prog.Filesz)
		if _, err := io.ReadFull(prog.Open(), fileData); err != nil {
			return fmt.Errorf("segment %d: %w", index, err)
		}

		if !bytes.Equal(loaded[:prog.Filesz], fileData) {
			return fmt.Errorf("segment %d: contents at 0x%x differ from the image", index, prog.Vaddr)
		}

		for off, b := range loaded[prog.Filesz:] {
			if b != 0 {
				return fmt.Errorf("segment %d: byte at 0x%x is not zero-filled", index, prog.Vaddr+prog.Filesz+uint64(off))
			}
		}

		s.res.segments++
	}

	fmt.Fprintf(s.cfg.log, "[bootsim] %d loadable segments verified\n", s.res.segments)
	return nil
}

func (s *simulation) close() {
	s.gop.close()
	if s.mem != nil {
		s.mem.Close()
	}
}
